package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapimport/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "importing.csv", cfg.Input)
	assert.Equal(t, "output.csv", cfg.Output)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, EnrollmentConfig{Course: "psf", Type: "manual", Role: "student"}, cfg.Enrollment)
	assert.Equal(t, 1000, cfg.Fixtures.Count)
	assert.Same(t, cfg, GetCurrentConfig())
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, `input: export.csv
delimiter: ","
encoding: latin1
enrollment:
  course: m2
fixtures:
  count: 10
  email_domain: example.org
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, "export.csv", cfg.Input)
	assert.Equal(t, "output.csv", cfg.Output, "unset keys keep their defaults")
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, "latin1", cfg.Encoding)
	assert.Equal(t, "m2", cfg.Enrollment.Course)
	assert.Equal(t, "manual", cfg.Enrollment.Type)
	assert.Equal(t, 10, cfg.Fixtures.Count)
	assert.Equal(t, "example.org", cfg.Fixtures.EmailDomain)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	ResetConfig()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "input: from_file.csv\nenrollment:\n  role: from_file\n")

	t.Setenv("LEAPIMPORT_INPUT", "from_env.csv")
	t.Setenv("LEAPIMPORT_ENROLLMENT_ROLE", "manager")
	t.Setenv("LEAPIMPORT_FIXTURES_EMAIL_DOMAIN", "env.org")
	t.Setenv("LEAPIMPORT_FIXTURES_COUNT", "5")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "from_env.csv", cfg.Input)
	assert.Equal(t, "manager", cfg.Enrollment.Role)
	assert.Equal(t, "env.org", cfg.Fixtures.EmailDomain)
	assert.Equal(t, 5, cfg.Fixtures.Count)
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "input: from_file.csv\noutput: file_out.csv\n")
	t.Setenv("LEAPIMPORT_INPUT", "from_env.csv")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("input", "", "input file")
	flags.String("output", "", "output file")
	flags.String("course", "", "course")
	flags.Int("count", 0, "fixture rows")
	flags.String("config", "", "config file")
	require.NoError(t, flags.Set("input", "from_flag.csv"))
	require.NoError(t, flags.Set("course", "flag-course"))
	require.NoError(t, flags.Set("count", "7"))
	require.NoError(t, flags.Set("config", path))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "from_flag.csv", cfg.Input, "flag value should override config file and env var")
	assert.Equal(t, "file_out.csv", cfg.Output, "unset flag should not override config file")
	assert.Equal(t, "flag-course", cfg.Enrollment.Course)
	assert.Equal(t, 7, cfg.Fixtures.Count)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"bad delimiter", "delimiter: ';;'\n", "single character"},
		{"quote delimiter", "delimiter: '\"'\n", "invalid delimiter"},
		{"bad encoding", "encoding: ebcdic\n", "unsupported encoding"},
		{"bad format", "format: xml\n", "unknown format"},
		{"bad count", "fixtures:\n  count: -1\n", "fixtures.count"},
		{"empty input", "input: ''\n", "input is required"},
		{"bad yaml", "input: [\n", "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{";", ';', false},
		{",", ',', false},
		{"|", '|', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{"\t", '\t', false},
		{"", 0, true},
		{";;", 0, true},
		{"\n", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDelimiter(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "input", envKey("LEAPIMPORT_INPUT"))
	assert.Equal(t, "enrollment.course", envKey("LEAPIMPORT_ENROLLMENT_COURSE"))
	assert.Equal(t, "fixtures.email_domain", envKey("LEAPIMPORT_FIXTURES_EMAIL_DOMAIN"))
}

func TestConfig_Options(t *testing.T) {
	cfg := Default()
	cfg.Delimiter = "tab"
	cfg.Enrollment.Course = "m9"
	cfg.Fixtures.Count = 3

	opts := cfg.TransformOptions()
	assert.Equal(t, '\t', opts.Delimiter)
	assert.Equal(t, "m9", opts.Enrollment.Course)
	assert.Equal(t, "student", opts.Enrollment.Role)

	fx := cfg.FixtureOptions()
	assert.Equal(t, 3, fx.Count)
	assert.Equal(t, "moodle", fx.Password)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "fallback logger")

	logger := testutil.NewTestLogger(t)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
