package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/ampacity/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the ampacity CLI. It wires up
// logging and tracing, the global --output flag and the calculation and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "ampacity",
		Short:   "Conductor derating and voltage-drop sizing",
		Long:    "ampacity: derate conductor ampacity, compute voltage drop and size conductors per NEC tables",
		Version: ver,
		Example: rootCmdExample,
		// Calculation failures are reported through the rendered diagnostics.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (default from config)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table or json (default from config)")
	cmd.PersistentFlags().Int("precision", -1, "decimals in table output (default from config)")
	cmd.AddCommand(
		NewDropCmd(), NewSizeCmd(), NewLengthCmd(),
		NewDerateCmd(), NewFillCmd(), NewBatchCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Voltage drop of 12 AWG copper over 100 ft at 10 A, 120 V
  ampacity drop --size 12 --length 100ft --current 10

  # Smallest conductor keeping a 480 V three-phase feeder within 2 %
  ampacity size --length 250ft --current 80 --voltage 480 --phases 3 --pf 0.85 --max-drop 2

  # Longest run of 10 AWG aluminum in steel conduit
  ampacity length --size 10 --metal al --conduit steel --current 16 --voltage 240

  # Derated ampacity of six 8 AWG THHN in one conduit at 104 °F
  ampacity derate --size 8 --insulation THHN --conduit pvc --conductors 6 --ambient-f 104

  # Size every circuit of a file, as JSON
  ampacity batch circuits.yaml --output json

  # Initialize configuration
  ampacity config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
