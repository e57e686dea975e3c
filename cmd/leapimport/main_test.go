// Package main provides tests for the leapimport CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapimport/internal/cli"
	"github.com/leapstack-labs/leapimport/internal/cli/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "leapimport") {
		t.Errorf("version output should contain 'leapimport', got: %s", output)
	}
}

func TestVersionFlag(t *testing.T) {
	output, err := execute(t, "--version")
	if err != nil {
		t.Errorf("--version error = %v", err)
	}
	if !strings.Contains(output, "leapimport "+cli.Version) {
		t.Errorf("--version output should contain the version, got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, err := execute(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"convert", "preview", "fixtures", "init", "version", "completion"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	dir := testutil.SetupImportProject(t)

	if _, err := execute(t, "convert", "-i", "importing.csv", "-o", "upload.csv"); err != nil {
		t.Fatalf("convert command error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "upload.csv"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(got) != testutil.SampleUpload {
		t.Errorf("output = %q, want %q", got, testutil.SampleUpload)
	}
}

func TestConvertCommandDefaults(t *testing.T) {
	dir := testutil.SetupImportProject(t)

	if _, err := execute(t, "convert"); err != nil {
		t.Fatalf("convert command error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "output.csv")); err != nil {
		t.Errorf("output.csv should be written by default: %v", err)
	}
}

func TestConvertCommandJSON(t *testing.T) {
	testutil.SetupImportProject(t)

	output, err := execute(t, "convert", "--format", "json")
	if err != nil {
		t.Fatalf("convert command error = %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(output), "{") || !strings.Contains(output, `"rows": 3`) {
		t.Errorf("expected JSON output, got: %s", output)
	}
}

func TestConvertCommandConfigFile(t *testing.T) {
	dir := testutil.SetupImportProject(t)
	cfg := "output: from_config.csv\nenrollment:\n  course: m3\n"
	if err := os.WriteFile(filepath.Join(dir, "leapimport.yaml"), []byte(cfg), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := execute(t, "convert"); err != nil {
		t.Fatalf("convert command error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "from_config.csv"))
	if err != nil {
		t.Fatalf("config output should be used: %v", err)
	}
	if !strings.Contains(string(got), ",m3,manual,student\n") {
		t.Errorf("config course should be used, got: %s", got)
	}
}

func TestConvertCommandMissingColumn(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("importing.csv", []byte("Inscrição;Oferta;Nome;Email;Senha\n1;X;Ana;a@x;p\n"), 0600); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}

	_, err := execute(t, "convert")
	if err == nil {
		t.Fatal("convert should fail without a CPF column")
	}
	if !strings.Contains(err.Error(), `"CPF"`) {
		t.Errorf("error should name the missing column, got: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "output.csv")); !os.IsNotExist(statErr) {
		t.Error("output.csv should not be written on failure")
	}
}

func TestVerboseLogging(t *testing.T) {
	testutil.SetupImportProject(t)

	output, err := execute(t, "convert", "-v")
	if err != nil {
		t.Fatalf("convert command error = %v", err)
	}
	if !strings.Contains(output, "level=DEBUG") || !strings.Contains(output, "run_id=") {
		t.Errorf("verbose output should include debug logs, got: %s", output)
	}
}

func TestPreviewCommand(t *testing.T) {
	dir := testutil.SetupImportProject(t)

	output, err := execute(t, "preview", "--format", "markdown")
	if err != nil {
		t.Fatalf("preview command error = %v", err)
	}
	if !strings.Contains(output, "Pedro Souza") {
		t.Errorf("preview should show converted rows, got: %s", output)
	}
	if _, err := os.Stat(filepath.Join(dir, "output.csv")); !os.IsNotExist(err) {
		t.Error("preview should not write output.csv")
	}
}

func TestFixturesCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if _, err := execute(t, "fixtures"); err != nil {
		t.Fatalf("fixtures command error = %v", err)
	}

	login, err := os.ReadFile(filepath.Join(dir, "login.csv"))
	if err != nil {
		t.Fatalf("failed to read login.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(login), "\n"), "\n")
	if len(lines) != 1001 {
		t.Errorf("login.csv has %d lines, want 1001", len(lines))
	}
	if lines[500] != "500s,moodle" {
		t.Errorf("login.csv line 500 = %q, want %q", lines[500], "500s,moodle")
	}

	if _, err := os.Stat(filepath.Join(dir, "usuarios.csv")); err != nil {
		t.Errorf("usuarios.csv should be written: %v", err)
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if _, err := execute(t, "init"); err != nil {
		t.Fatalf("init command error = %v", err)
	}
	if _, err := execute(t, "--config", filepath.Join(dir, "leapimport.yaml"), "version"); err != nil {
		t.Errorf("generated config should load: %v", err)
	}
	if _, err := execute(t, "init"); err == nil {
		t.Error("second init without --force should fail")
	}
}

func TestCompletionCommand(t *testing.T) {
	shells := []string{"bash", "zsh", "fish", "powershell"}

	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			output, err := execute(t, "completion", shell)
			if err != nil {
				t.Errorf("completion %s command error = %v", shell, err)
			}
			if output == "" {
				t.Errorf("completion %s produced no output", shell)
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	if _, err := execute(t, "unknown-command"); err == nil {
		t.Error("unknown command should return an error")
	}
}

func TestInvalidFormat(t *testing.T) {
	if _, err := execute(t, "version", "--format", "xml"); err == nil {
		t.Error("unknown format should return an error")
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
