package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ampacity/internal/batch"
	"github.com/rshade/ampacity/internal/vdrop"
)

// NewSizeCmd creates the size command, which finds the smallest conductor
// whose voltage drop stays within the target.
func NewSizeCmd() *cobra.Command {
	var flags circuitFlags

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Find the smallest conductor meeting a voltage-drop target",
		Long: `Searches the tabulated sizes from 14 AWG upward and reports the first one whose
voltage drop does not exceed --max-drop. Sizes with no tabulated resistance for
the metal and raceway are skipped. The result includes the derated ampacity of
the chosen size and the longest run it can serve at the same target.`,
		Example: `  # Smallest copper conductor for a 16 A, 85 ft branch at 2 %
  ampacity size --length 85ft --current 16 --max-drop 2

  # 480 V three-phase feeder in steel conduit
  ampacity size --length 250ft --current 80 --voltage 480 --phases 3 --pf 0.85 --conduit steel`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSize(cmd, &flags)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

func runSize(cmd *cobra.Command, flags *circuitFlags) error {
	c, m, err := flags.build(cmd, batch.TaskSize)
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

	var s vdrop.Sizing
	if c.Mode == batch.ModeDC {
		s = engine.SizeDC(m, c.Params())
	} else {
		s = engine.SizeAC(m, c.Params())
	}
	if s.Found {
		m.SetSize(s.Size)
	}
	if err := r.Sizing(reportCircuit(c, m), s); err != nil {
		return err
	}
	return diagnosticsExit(s.Messages)
}
