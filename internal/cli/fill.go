package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ampacity/internal/batch"
	"github.com/rshade/ampacity/internal/config"
	"github.com/rshade/ampacity/internal/raceway"
	"github.com/rshade/ampacity/internal/report"
)

// NewFillCmd creates the fill command, which reports conduit fill and the
// smallest trade size that holds the conductors.
func NewFillCmd() *cobra.Command {
	var flags circuitFlags

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Find the smallest conduit trade size for a set of conductors",
		Long: `Places --conductors identical conductors or cables in a conduit and reports
the total insulated area, the allowed fill percentage and the smallest trade size
of the conduit material that holds them.

The allowed fill is 53% for one member, 31% for two and 40% for more. A nipple of
24 in or less may be filled to 60%.`,
		Example: `  # Four 6 AWG THHN in EMT
  ampacity fill --size 6 --insulation THHN --conduit steel --conductors 4

  # Nine 10 AWG XHHW in a PVC nipple
  ampacity fill --size 10 --insulation XHHW --conductors 9 --nipple`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFill(cmd, &flags)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

func runFill(cmd *cobra.Command, flags *circuitFlags) error {
	if flags.size == "" {
		flags.size = raceway.DefaultSize.Name()
	}
	if flags.conduit == "" {
		flags.conduit = config.GetGlobalConfig().Defaults.Conduit
	}
	if flags.bundle > 0 {
		return &ExitError{ExitCode: ExitUsage, Reason: "--bundle cannot be used with fill"}
	}
	_, m, err := flags.build(cmd, batch.TaskDrop)
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return r.Fill(conduitFill(m.Conduit()))
}

func conduitFill(c *raceway.Conduit) report.Fill {
	f := report.Fill{
		Material:       c.Material(),
		Members:        c.Len(),
		CurrentCarry:   c.CurrentCarryingCount(),
		Nipple:         c.IsNipple(),
		FillArea:       c.FillArea(),
		AllowedPercent: c.AllowedFillPercent(),
		Adjustment:     c.AdjustmentFactor(),
	}
	if ts, ok := c.MinTradeSize(); ok {
		f.TradeSize = &ts
		f.FillPercent = c.FillPercent(ts)
	}
	return f
}
