package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ampacity/internal/batch"
	"github.com/rshade/ampacity/internal/vdrop"
)

// NewLengthCmd creates the length command, which solves for the longest run
// of a conductor size that stays within the voltage-drop target.
func NewLengthCmd() *cobra.Command {
	var flags circuitFlags

	cmd := &cobra.Command{
		Use:   "length",
		Short: "Find the longest run of a conductor within a voltage-drop target",
		Example: `  # Longest 10 AWG copper run at 10 A, 120 V, 3 %
  ampacity length --size 10 --current 10

  # Aluminum in steel conduit at 2 %
  ampacity length --size 2 --metal al --conduit steel --current 80 --voltage 240 --max-drop 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLength(cmd, &flags)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

func runLength(cmd *cobra.Command, flags *circuitFlags) error {
	c, m, err := flags.build(cmd, batch.TaskLength)
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

	var l vdrop.Length
	if c.Mode == batch.ModeDC {
		l = engine.MaxLengthDC(m, c.Params())
	} else {
		l = engine.MaxLengthAC(m, c.Params())
	}
	if err := r.Length(reportCircuit(c, m), l); err != nil {
		return err
	}
	return diagnosticsExit(l.Messages)
}
