// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapimport/internal/cli/config"
	basetestutil "github.com/leapstack-labs/leapimport/internal/testutil"
)

// SampleExport is a small enrollment export with one column the conversion drops.
var SampleExport = []string{
	basetestutil.ExportHeader + ";Situação",
	"1;PSF-2024;Maria Silva;01234567890;maria@example.com;s3cret;Ativo",
	"2;PSF-2024;João Pedro Souza;98765432100;joao@example.com;abc123;Ativo",
	"3;PSF-2024;Prince;11122233344;prince@example.com;pw;Trancado",
}

// SampleUpload is the upload file produced from SampleExport with default settings.
const SampleUpload = `username,firstname,lastname,email,password,course1,type1,role1
01234567890,Maria,Silva,maria@example.com,s3cret,psf,manual,student
98765432100,João,Pedro Souza,joao@example.com,abc123,psf,manual,student
11122233344,Prince,,prince@example.com,pw,psf,manual,student
`

// SetupImportProject creates a temporary directory holding importing.csv,
// makes it the working directory and clears any loaded configuration.
func SetupImportProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	content := strings.Join(SampleExport, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "importing.csv"), []byte(content), 0600); err != nil {
		t.Fatalf("failed to create importing.csv: %v", err)
	}

	t.Chdir(tmpDir)
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	return tmpDir
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences, empty headers and ragged tables.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	if fenceCount := strings.Count(md, "```"); fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	cells := -1
	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
		if !strings.HasPrefix(trimmed, "|") {
			cells = -1
			continue
		}
		n := strings.Count(strings.ReplaceAll(trimmed, `\|`, ""), "|")
		if cells >= 0 && n != cells {
			t.Errorf("table row at line %d has %d separators, want %d: %q", i+1, n, cells, line)
		}
		cells = n
	}
}
