package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ampacity/internal/config"
)

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the configuration file overlaid by
.env files and AMPACITY_* environment variables.

This includes:
- Schema version compatibility
- Metal, insulation and conduit names
- Source voltage, phases, parallel sets, power factor and drop target ranges
- Output format and precision`,
		Example: `  # Validate current configuration
  ampacity config validate

  # Validate and show the effective values
  ampacity config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.New()

	if err := cfg.Validate(); err != nil {
		return &ExitError{ExitCode: ExitUsage, Reason: "configuration validation failed: " + err.Error()}
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	d := cfg.Defaults
	cmd.Printf("\nConfiguration details:\n")
	cmd.Printf("  File: %s\n", cfg.ConfigPath())
	cmd.Printf("  Version: %s\n", cfg.Version)
	cmd.Printf("  Defaults:\n")
	cmd.Printf("    Source voltage: %g V\n", d.SourceVoltage)
	cmd.Printf("    Phases: %d\n", d.Phases)
	cmd.Printf("    Parallel sets: %d\n", d.Sets)
	cmd.Printf("    Power factor: %g\n", d.PowerFactor)
	cmd.Printf("    Max drop: %g%%\n", d.MaxDropPercent)
	cmd.Printf("    Metal: %s\n", d.Metal)
	cmd.Printf("    Insulation: %s\n", d.Insulation)
	cmd.Printf("    Conduit: %s\n", d.Conduit)
	cmd.Printf("    Ambient: %d°F\n", d.AmbientF)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Log level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
