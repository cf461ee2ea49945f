package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/ampacity/internal/config"
)

// NewConfigInitCmd creates the config init command, which writes the built-in
// defaults to the configuration file.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $AMPACITY_HOME/config.yaml (default ~/.ampacity/config.yaml) holding
the built-in circuit defaults, output and logging settings.`,
		Example: `  # Create the configuration file
  ampacity config init

  # Overwrite an existing configuration file
  ampacity config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}

	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return &ExitError{ExitCode: ExitUsage, Reason: "configuration file already exists, use --force to overwrite"}
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return fmt.Errorf("cannot access config path %s: %w", path, statErr)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)

	return nil
}
