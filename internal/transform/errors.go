package transform

import (
	"errors"
	"fmt"
)

// ErrNoHeader is returned (wrapped in an InputFormatError) when the input has no header row.
var ErrNoHeader = errors.New("missing header row")

// InputFormatError reports a source file that is missing, unreadable or malformed.
type InputFormatError struct {
	Path string
	Err  error
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("invalid input %s: %v", e.Path, e.Err)
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// SchemaError reports a column required by a transformation step that is
// absent from the table at that step.
type SchemaError struct {
	Step   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: required column %q not found", e.Step, e.Column)
}

// OutputWriteError reports a destination that could not be created or written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
