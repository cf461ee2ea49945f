package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ampacity/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the effective
// configuration as YAML.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration every command uses: the built-in defaults overlaid
by the configuration file, .env files and AMPACITY_* environment variables.`,
		Example: `  ampacity config show
  AMPACITY_MAX_DROP=2 ampacity config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(config.New())
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			cmd.Print(string(data))
			return nil
		},
	}
}
