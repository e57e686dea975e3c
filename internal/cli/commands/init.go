package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/leapimport/internal/cli/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default leapimport.yaml",
		Long: `Write a leapimport.yaml holding the default settings, ready to edit.

The file records the input and output paths, the export delimiter and
encoding, the enrollment values stamped on every converted row, and the
fixture generator settings.`,
		Example: `  # Initialize in current directory
  leapimport init

  # Initialize in a new directory
  leapimport init turma-2024

  # Force overwrite existing config
  leapimport init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.DefaultConfigFile)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.DefaultConfigFile)
	}

	cfg := config.Default()
	cfg.Format = ""
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	cc.Logger.Debug("wrote config", "path", configPath)

	r.StatusLine(configPath, "success", "")
	r.Println("")
	r.Success("leapimport configured!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Set input and enrollment.course in " + config.DefaultConfigFile)
	r.Println("  2. Run 'leapimport preview' to check the converted rows")
	r.Println("  3. Run 'leapimport convert' to write the upload file")

	return nil
}
