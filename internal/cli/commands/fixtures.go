package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/leapimport/internal/cli/output"
	"github.com/leapstack-labs/leapimport/internal/fixtures"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type fixtureKind struct {
	name     string
	file     string
	generate func(path string, opts fixtures.Options) error
}

var fixtureKinds = map[string]fixtureKind{
	"login": {name: "login", file: fixtures.LoginFile, generate: fixtures.GenerateLogins},
	"users": {name: "users", file: fixtures.UsersFile, generate: fixtures.GenerateUsers},
}

// NewFixturesCommand creates the fixtures command.
func NewFixturesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures [login|users|all]",
		Short: "Generate synthetic upload files for testing an import",
		Long: `Generate synthetic CSV files for exercising a bulk user import.

  login   login.csv     username,password  (1s..1000s with password moodle)
  users   usuarios.csv  full upload records enrolled in course m1
  all     both files (default)

The output is deterministic: running the command twice produces identical files.`,
		Example: `  # Write login.csv and usuarios.csv into the current directory
  leapimport fixtures

  # Write 50 user records into ./testdata
  leapimport fixtures users --count 50 --dir testdata`,
		ValidArgs: []string{"login", "users", "all"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			which := "all"
			if len(args) > 0 {
				which = args[0]
			}
			return runFixtures(cmd, which)
		},
	}

	d := fixtures.DefaultOptions()
	cmd.Flags().String("dir", ".", "Directory to write the fixture files into")
	cmd.Flags().Int("count", d.Count, "Number of records per file")
	cmd.Flags().String("password", d.Password, "Password of every generated user")
	cmd.Flags().String("fixture-course", d.Course, "Value of the course1 column in usuarios.csv")
	cmd.Flags().String("email-domain", d.EmailDomain, "Domain of the generated email addresses")

	return cmd
}

func runFixtures(cmd *cobra.Command, which string) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer
	opts := cc.Cfg.FixtureOptions()
	dir := cc.Cfg.Fixtures.Dir

	var kinds []fixtureKind
	if which == "all" {
		kinds = []fixtureKind{fixtureKinds["login"], fixtureKinds["users"]}
	} else {
		kinds = []fixtureKind{fixtureKinds[which]}
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// The generators write disjoint files, so they can run side by side.
	eg, ctx := errgroup.WithContext(cmd.Context())
	for _, kind := range kinds {
		path := filepath.Join(dir, kind.file)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cc.Logger.Debug("generating fixture", "fixture", kind.name, "path", path, "rows", opts.Count)
			return kind.generate(path, opts)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	infos := make([]output.FixtureInfo, 0, len(kinds))
	for _, kind := range kinds {
		path := filepath.Join(dir, kind.file)
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		infos = append(infos, output.FixtureInfo{Name: kind.name, FilePath: path, Rows: opts.Count})
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.FixtureOutput{Fixtures: infos})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Fixtures"))
		r.Println("")
		for _, info := range infos {
			r.Println(output.FormatKeyValue("File", info.FilePath))
			r.Println(output.FormatKeyValue("Rows", fmt.Sprint(info.Rows)))
			r.Println("")
		}
	default:
		r.Header(1, "Fixtures")
		for _, info := range infos {
			r.StatusLine(info.FilePath, "success", fmt.Sprintf("%d rows", info.Rows))
		}
	}
	return nil
}
