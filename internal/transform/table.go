package transform

import (
	"fmt"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is an ordered, in-memory set of string records. Every column is held
// as a string series so values are never reinterpreted (leading zeros in CPF
// numbers survive).
type Table struct {
	df dataframe.DataFrame
}

// NewTable builds a table from a header row followed by data rows.
func NewTable(records [][]string) (*Table, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrNoHeader
	}

	// gota refuses to load a header without rows, so build the empty columns directly.
	if len(records) == 1 {
		cols := make([]series.Series, len(records[0]))
		for i, name := range records[0] {
			cols[i] = series.New([]string{}, series.String, name)
		}
		return fromFrame(dataframe.New(cols...))
	}

	return fromFrame(dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	))
}

func fromFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{df: df}, nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return t.df.Names()
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return t.df.Nrow()
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.df.Names(), name)
}

// Column returns the values of a column, or false if it does not exist.
func (t *Table) Column(name string) ([]string, bool) {
	if !t.HasColumn(name) {
		return nil, false
	}
	return t.df.Col(name).Records(), true
}

// Records returns the header followed by every data row.
func (t *Table) Records() [][]string {
	return t.df.Records()
}

// Head returns the header followed by at most n data rows.
func (t *Table) Head(n int) [][]string {
	records := t.df.Records()
	if n >= 0 && len(records) > n+1 {
		records = records[:n+1]
	}
	return records
}

// requireColumns returns a SchemaError for the first name that is not a column.
func (t *Table) requireColumns(step string, names ...string) error {
	for _, name := range names {
		if !t.HasColumn(name) {
			return &SchemaError{Step: step, Column: name}
		}
	}
	return nil
}

func (t *Table) derive(df dataframe.DataFrame, step string) (*Table, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("%s: %w", step, df.Err)
	}
	return &Table{df: df}, nil
}
