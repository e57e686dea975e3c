package transform

import (
	"io"

	"github.com/leapstack-labs/leapimport/internal/fsutil"
)

// Write encodes the table as comma-delimited text with a header row.
func Write(t *Table, w io.Writer) error {
	return t.df.WriteCSV(w)
}

// Save writes the table to path. The file is replaced atomically, so after a
// failed save path holds either its previous content or nothing.
func Save(t *Table, path string) error {
	if err := fsutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		return Write(t, w)
	}); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return nil
}
