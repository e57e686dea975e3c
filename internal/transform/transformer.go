// Package transform converts an enrollment export into the bulk user upload format.
//
// The conversion is a fixed sequence of whole-table steps:
//
//	load -> drop columns -> split name -> project -> augment -> save
//
// Any failing step aborts the run and nothing is written.
package transform

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Default file names and format.
const (
	DefaultInput     = "importing.csv"
	DefaultOutput    = "output.csv"
	DefaultDelimiter = ';'
)

// Options configures a Transformer.
type Options struct {
	Delimiter  rune
	Encoding   string
	Enrollment Enrollment
	Logger     *slog.Logger
}

// Result describes a completed run.
type Result struct {
	RunID    string        `json:"run_id"`
	Input    string        `json:"input"`
	Output   string        `json:"output"`
	Rows     int           `json:"rows"`
	Columns  []string      `json:"columns"`
	Duration time.Duration `json:"duration_ns"`
}

// Transformer runs the conversion steps.
type Transformer struct {
	delimiter  rune
	encoding   string
	enrollment Enrollment
	logger     *slog.Logger
}

// New creates a Transformer. Zero-valued options fall back to the defaults.
func New(opts Options) *Transformer {
	t := &Transformer{
		delimiter:  opts.Delimiter,
		encoding:   opts.Encoding,
		enrollment: opts.Enrollment,
		logger:     opts.Logger,
	}
	if t.delimiter == 0 {
		t.delimiter = DefaultDelimiter
	}
	if t.encoding == "" {
		t.encoding = EncodingUTF8
	}
	if t.enrollment == (Enrollment{}) {
		t.enrollment = DefaultEnrollment
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	return t
}

type step struct {
	name string
	fn   func(*Table) (*Table, error)
}

func (t *Transformer) steps() []step {
	return []step{
		{StepDrop, func(tbl *Table) (*Table, error) {
			return DropColumns(tbl, ColumnRegistration, ColumnOffer)
		}},
		{StepSplit, SplitName},
		{StepProject, Project},
		{StepAugment, func(tbl *Table) (*Table, error) {
			return Augment(tbl, t.enrollment)
		}},
	}
}

// Load reads the source export.
func (t *Transformer) Load(path string) (*Table, error) {
	return Load(path, t.delimiter, t.encoding)
}

// Apply runs every step between load and save over tbl.
func (t *Transformer) Apply(ctx context.Context, tbl *Table) (*Table, error) {
	return t.apply(ctx, t.logger, tbl)
}

func (t *Transformer) apply(ctx context.Context, logger *slog.Logger, tbl *Table) (*Table, error) {
	var err error
	for _, s := range t.steps() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tbl, err = s.fn(tbl)
		if err != nil {
			return nil, err
		}
		logger.Debug("step complete", "step", s.name, "rows", tbl.Len(), "columns", tbl.Columns())
	}
	return tbl, nil
}

// Preview loads input and applies the transformation without writing anything.
func (t *Transformer) Preview(ctx context.Context, input string) (*Table, error) {
	tbl, err := t.Load(input)
	if err != nil {
		return nil, err
	}
	return t.Apply(ctx, tbl)
}

// Run converts input into output.
func (t *Transformer) Run(ctx context.Context, input, output string) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()
	logger := t.logger.With("run_id", runID)

	logger.Debug("loading input", "path", input, "encoding", t.encoding, "delimiter", string(t.delimiter))
	tbl, err := t.Load(input)
	if err != nil {
		return nil, err
	}
	logger.Debug("step complete", "step", StepLoad, "rows", tbl.Len(), "columns", tbl.Columns())

	tbl, err = t.apply(ctx, logger, tbl)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Save(tbl, output); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:    runID,
		Input:    input,
		Output:   output,
		Rows:     tbl.Len(),
		Columns:  tbl.Columns(),
		Duration: time.Since(start),
	}
	logger.Info("conversion complete", "input", input, "output", output, "rows", res.Rows,
		"duration", res.Duration.Round(time.Millisecond))
	return res, nil
}
