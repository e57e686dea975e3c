package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/leapstack-labs/leapimport/internal/cli/output"
	"github.com/leapstack-labs/leapimport/internal/transform"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an enrollment export into a bulk user upload file",
		Long: `Convert a semicolon-delimited enrollment export into the comma-delimited
bulk user upload format.

The export must contain the columns Inscrição, Oferta, Nome, CPF, Email and
Senha; other columns are ignored. Each row becomes:

  username,firstname,lastname,email,password,course1,type1,role1

where username is the CPF, firstname/lastname come from Nome split on its
first space, and course1/type1/role1 are the configured enrollment values.

The output file is replaced atomically: when the conversion fails it is left
untouched.`,
		Example: `  # Convert importing.csv into output.csv
  leapimport convert

  # Convert a Latin-1 export into a different file
  leapimport convert -i turma.csv -o upload.csv --encoding latin1

  # Enroll into another course
  leapimport convert --course m2`,
		Aliases: []string{"run"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd)
		},
	}

	cmd.Flags().StringP("input", "i", transform.DefaultInput, "Enrollment export to read")
	cmd.Flags().StringP("output", "o", transform.DefaultOutput, "Upload file to write")
	cmd.Flags().String("delimiter", ";", "Field delimiter of the export")
	cmd.Flags().String("encoding", transform.EncodingUTF8, "Text encoding of the export (utf-8, latin1, windows-1252)")
	cmd.Flags().String("course", transform.DefaultEnrollment.Course, "Value of the course1 column")
	cmd.Flags().String("type", transform.DefaultEnrollment.Type, "Value of the type1 column")
	cmd.Flags().String("role", transform.DefaultEnrollment.Role, "Value of the role1 column")

	return cmd
}

func runConvert(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	opts := cc.Cfg.TransformOptions()
	opts.Logger = cc.Logger
	t := transform.New(opts)

	res, err := t.Run(cmd.Context(), cc.Cfg.Input, cc.Cfg.Output)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.ConvertOutput{
			RunID:      res.RunID,
			Input:      res.Input,
			Output:     res.Output,
			Rows:       res.Rows,
			Columns:    res.Columns,
			DurationMS: res.Duration.Milliseconds(),
		})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Conversion"))
		r.Println("")
		r.Println(output.FormatKeyValue("Input", res.Input))
		r.Println(output.FormatKeyValue("Output", res.Output))
		r.Println(output.FormatKeyValue("Rows", fmt.Sprint(res.Rows)))
		r.Println(output.FormatKeyValue("Columns", strings.Join(res.Columns, ", ")))
		r.Println(output.FormatKeyValue("Run ID", res.RunID))
	default:
		r.Header(1, "Conversion")
		r.StatusLine(res.Output, "success", fmt.Sprintf("%d rows", res.Rows))
		r.Println("")
		r.Muted(fmt.Sprintf("Source: %s", res.Input))
		r.Muted(fmt.Sprintf("Run %s completed in %s", res.RunID, res.Duration.Round(time.Millisecond)))
	}
	return nil
}
