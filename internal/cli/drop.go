package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ampacity/internal/batch"
	"github.com/rshade/ampacity/internal/vdrop"
)

// NewDropCmd creates the drop command, which computes the voltage drop of a
// given conductor size over a given length.
func NewDropCmd() *cobra.Command {
	var flags circuitFlags

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Compute the voltage drop of a circuit",
		Long: `Computes the voltage at the load and the voltage drop of a conductor or cable.

AC drop uses the tabulated AC resistance and reactance for the raceway material
and the load power factor. DC drop uses the tabulated DC resistance over the
supply and return conductors. Flags not given take the configured defaults.`,
		Example: `  # 12 AWG copper THW in PVC, 100 ft, 10 A at 120 V
  ampacity drop --size 12 --length 100 --conduit pvc --current 10

  # 4/0 aluminum, three-phase 480 V, two parallel sets
  ampacity drop --size 4/0 --metal al --length 300ft --current 300 --voltage 480 --phases 3 --sets 2

  # DC string run in meters
  ampacity drop --dc --size 10 --length 40m --current 9 --voltage 400`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDrop(cmd, &flags)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

func runDrop(cmd *cobra.Command, flags *circuitFlags) error {
	c, m, err := flags.build(cmd, batch.TaskDrop)
	if err != nil {
		return err
	}
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	var d vdrop.Drop
	if c.Mode == batch.ModeDC {
		d = engine.DropDC(m, c.Params())
	} else {
		d = engine.DropAC(m, c.Params())
	}
	if err := r.Drop(reportCircuit(c, m), d); err != nil {
		return err
	}
	return diagnosticsExit(d.Messages)
}
