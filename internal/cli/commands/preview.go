package commands

import (
	"fmt"

	"github.com/leapstack-labs/leapimport/internal/cli/output"
	"github.com/leapstack-labs/leapimport/internal/transform"
	"github.com/spf13/cobra"
)

// PreviewOptions holds options for the preview command.
type PreviewOptions struct {
	Limit int
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	opts := &PreviewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the converted rows without writing them",
		Long: `Run the conversion in memory and print the first rows of the result.

Nothing is written to disk, so preview is safe to run against a live export
to check the column mapping before running convert.`,
		Example: `  # Show the first 10 converted rows
  leapimport preview

  # Show 3 rows of a Latin-1 export as JSON
  leapimport preview -i turma.csv --encoding latin1 --limit 3 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, opts)
		},
	}

	cmd.Flags().StringP("input", "i", transform.DefaultInput, "Enrollment export to read")
	cmd.Flags().String("delimiter", ";", "Field delimiter of the export")
	cmd.Flags().String("encoding", transform.EncodingUTF8, "Text encoding of the export (utf-8, latin1, windows-1252)")
	cmd.Flags().String("course", transform.DefaultEnrollment.Course, "Value of the course1 column")
	cmd.Flags().String("type", transform.DefaultEnrollment.Type, "Value of the type1 column")
	cmd.Flags().String("role", transform.DefaultEnrollment.Role, "Value of the role1 column")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 10, "Number of rows to show (0 for all)")

	return cmd
}

func runPreview(cmd *cobra.Command, opts *PreviewOptions) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	topts := cc.Cfg.TransformOptions()
	topts.Logger = cc.Logger

	tbl, err := transform.New(topts).Preview(cmd.Context(), cc.Cfg.Input)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = tbl.Len()
	}
	records := tbl.Head(limit)
	shown := len(records) - 1

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.PreviewOutput{
			Input:   cc.Cfg.Input,
			Columns: tbl.Columns(),
			Rows:    rowMaps(records[0], records[1:]),
			Shown:   shown,
			Total:   tbl.Len(),
		})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Preview"))
		r.Println("")
		if err := renderRecords(r.Writer(), records, "markdown"); err != nil {
			return err
		}
		r.Println("")
		r.Printf("**Showing:** %d of %d rows\n", shown, tbl.Len())
	default:
		r.Header(1, "Preview")
		if err := renderRecords(r.Writer(), records, "table"); err != nil {
			return err
		}
		r.Muted(fmt.Sprintf("Showing %d of %d rows from %s", shown, tbl.Len(), cc.Cfg.Input))
	}
	return nil
}
