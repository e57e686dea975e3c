// Package config provides configuration management for the leapimport CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults, the
// leapimport.yaml config file, LEAPIMPORT_* environment variables, and flags
// that were explicitly set on the command line.
package config

import (
	"github.com/leapstack-labs/leapimport/internal/fixtures"
	"github.com/leapstack-labs/leapimport/internal/transform"
)

// Config holds all CLI configuration options.
type Config struct {
	Input      string           `koanf:"input" yaml:"input"`
	Output     string           `koanf:"output" yaml:"output"`
	Delimiter  string           `koanf:"delimiter" yaml:"delimiter"`
	Encoding   string           `koanf:"encoding" yaml:"encoding"`
	Enrollment EnrollmentConfig `koanf:"enrollment" yaml:"enrollment"`
	Fixtures   FixturesConfig   `koanf:"fixtures" yaml:"fixtures"`
	Verbose    bool             `koanf:"verbose" yaml:"verbose,omitempty"`
	Format     string           `koanf:"format" yaml:"format,omitempty"`
}

// EnrollmentConfig holds the course metadata written on every converted row.
type EnrollmentConfig struct {
	Course string `koanf:"course" yaml:"course"`
	Type   string `koanf:"type" yaml:"type"`
	Role   string `koanf:"role" yaml:"role"`
}

// FixturesConfig controls the synthetic fixture files.
type FixturesConfig struct {
	Dir         string `koanf:"dir" yaml:"dir"`
	Count       int    `koanf:"count" yaml:"count"`
	Password    string `koanf:"password" yaml:"password"`
	Course      string `koanf:"course" yaml:"course"`
	EmailDomain string `koanf:"email_domain" yaml:"email_domain"`
}

// Default configuration values.
const (
	DefaultConfigFile = "leapimport.yaml"
	DefaultDelimiter  = ";"
	DefaultFormat     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultFixtureDir = "."
)

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	fx := fixtures.DefaultOptions()
	return &Config{
		Input:     transform.DefaultInput,
		Output:    transform.DefaultOutput,
		Delimiter: DefaultDelimiter,
		Encoding:  transform.EncodingUTF8,
		Enrollment: EnrollmentConfig{
			Course: transform.DefaultEnrollment.Course,
			Type:   transform.DefaultEnrollment.Type,
			Role:   transform.DefaultEnrollment.Role,
		},
		Fixtures: FixturesConfig{
			Dir:         DefaultFixtureDir,
			Count:       fx.Count,
			Password:    fx.Password,
			Course:      fx.Course,
			EmailDomain: fx.EmailDomain,
		},
		Format: DefaultFormat,
	}
}

// TransformOptions converts the configuration into transformer options.
// The delimiter must already have been validated.
func (c *Config) TransformOptions() transform.Options {
	delim, _ := ParseDelimiter(c.Delimiter)
	return transform.Options{
		Delimiter: delim,
		Encoding:  c.Encoding,
		Enrollment: transform.Enrollment{
			Course: c.Enrollment.Course,
			Type:   c.Enrollment.Type,
			Role:   c.Enrollment.Role,
		},
	}
}

// FixtureOptions converts the configuration into fixture generator options.
func (c *Config) FixtureOptions() fixtures.Options {
	return fixtures.Options{
		Count:       c.Fixtures.Count,
		Password:    c.Fixtures.Password,
		Course:      c.Fixtures.Course,
		EmailDomain: c.Fixtures.EmailDomain,
	}
}
