package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ampacity/internal/batch"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
)

// NewDerateCmd creates the derate command, which reports the temperature
// correction, adjustment and derated ampacity of a conductor or cable.
func NewDerateCmd() *cobra.Command {
	var (
		flags       circuitFlags
		termination []int
	)

	cmd := &cobra.Command{
		Use:   "derate",
		Short: "Show ampacity correction and adjustment factors",
		Long: `Reports the ampacity derating of a conductor or cable in its installation.

The correction factor follows the ambient temperature (raised by the rooftop
adder for sunlit conduits) and the insulation rating. The adjustment factor
follows the number of current-carrying conductors sharing the conduit or bundle,
including the bundle exceptions for AC and MC cable. With --termination the
conductor is also evaluated at the typical insulation of each termination
rating.`,
		Example: `  # Six 8 AWG THHN in one PVC conduit at 104 °F
  ampacity derate --size 8 --insulation THHN --conduit pvc --conductors 6 --ambient-f 104

  # Conduit 1 in above a sunlit roof
  ampacity derate --size 10 --conduit steel --rooftop-in 1

  # Eleven 12/2 MC cables bundled over 30 in
  ampacity derate --cable MC --system "120V 1ph 2W" --bundle 11 --bundle-length-in 30

  # Compare against 60 and 75 °C terminations
  ampacity derate --size 6 --insulation THHN --termination 60,75`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDerate(cmd, &flags, termination)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().IntSliceVar(&termination, "termination", nil, "termination ratings in °C to evaluate: 60, 75, 90")

	return cmd
}

func runDerate(cmd *cobra.Command, flags *circuitFlags, termination []int) error {
	if flags.size == "" {
		flags.size = raceway.DefaultSize.Name()
	}
	_, m, err := flags.build(cmd, batch.TaskDrop)
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	snaps := []raceway.Snapshot{raceway.Snap(m)}
	for _, rating := range termination {
		tr := nec.TempRating(rating)
		if !tr.IsValid() {
			return &ExitError{ExitCode: ExitUsage, Reason: "termination rating must be 60, 75 or 90"}
		}
		snaps = append(snaps, snapAt(m, tr))
	}
	return r.Derating(snaps)
}

// snapAt is the snapshot m would have with the typical insulation of rating r.
// The insulation of m is restored before returning.
func snapAt(m raceway.Conduitable, r nec.TempRating) raceway.Snapshot {
	original := m.Insulation()
	defer m.SetInsulation(original)
	m.SetInsulation(nec.TypicalInsulation(r))
	return raceway.Snap(m)
}
