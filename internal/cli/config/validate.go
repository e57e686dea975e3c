package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/leapimport/internal/transform"
)

// Output formats accepted by --format.
var Formats = []string{"auto", "text", "markdown", "json"}

// ParseDelimiter converts a configured delimiter into a rune. The names
// "tab" and `\t` select a tab.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if _, err := ParseDelimiter(c.Delimiter); err != nil {
		return err
	}
	if _, err := transform.LookupEncoding(c.Encoding); err != nil {
		return err
	}
	if !isFormat(c.Format) {
		return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	if c.Fixtures.Count <= 0 {
		return fmt.Errorf("fixtures.count must be positive, got %d", c.Fixtures.Count)
	}
	return nil
}

func isFormat(f string) bool {
	if f == "" || f == "md" {
		return true
	}
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
