package transform

// load.go - reading and decoding the source export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	xtransform "golang.org/x/text/transform"
)

// Supported input encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// LookupEncoding resolves an encoding name to its text encoding.
// UTF-8 input has a leading byte order mark stripped.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-")) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q (want %s, %s or %s)",
			name, EncodingUTF8, EncodingLatin1, EncodingWindows1252)
	}
}

// Load reads the delimited file at path into a Table. The header row names the columns.
func Load(path string, delimiter rune, enc string) (*Table, error) {
	codec, err := LookupEncoding(enc)
	if err != nil {
		return nil, &InputFormatError{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &InputFormatError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	tbl, err := Read(xtransform.NewReader(bufio.NewReader(f), codec.NewDecoder()), delimiter)
	if err != nil {
		var ife *InputFormatError
		if errors.As(err, &ife) {
			ife.Path = path
			return nil, ife
		}
		return nil, &InputFormatError{Path: path, Err: err}
	}
	return tbl, nil
}

// Read parses already-decoded delimited text into a Table.
func Read(r io.Reader, delimiter rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &InputFormatError{Err: fmt.Errorf("parse: %w", err)}
	}

	tbl, err := NewTable(records)
	if err != nil {
		return nil, &InputFormatError{Err: err}
	}
	return tbl, nil
}
