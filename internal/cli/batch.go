package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ampacity/internal/batch"
	"github.com/rshade/ampacity/internal/logging"
	"github.com/rshade/ampacity/internal/nec"
)

// NewBatchCmd creates the batch command, which evaluates every circuit of a
// circuits file.
func NewBatchCmd() *cobra.Command {
	var (
		concurrency int
		chunkSize   int
	)

	cmd := &cobra.Command{
		Use:   "batch <circuits.yaml>",
		Short: "Evaluate a file of circuits",
		Long: `Reads a YAML circuits file and evaluates every circuit concurrently. Each
circuit runs a drop, size or length task; unset fields take the file defaults,
then the configured defaults.

Results are printed in file order. The command exits with status 2 when any
circuit fails to build or reports an error diagnostic.`,
		Example: `  # Evaluate a circuits file
  ampacity batch circuits.yaml

  # JSON output, four workers
  ampacity batch circuits.yaml --output json --concurrency 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], concurrency, chunkSize)
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "chunks evaluated at once (0 uses every CPU)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", batch.DefaultChunkSize, "circuits per chunk")

	return cmd
}

func runBatch(cmd *cobra.Command, path string, concurrency, chunkSize int) error {
	f, err := batch.Load(path)
	if err != nil {
		return &ExitError{ExitCode: ExitUsage, Reason: err.Error()}
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	log := logging.FromContext(cmd.Context())
	runner, err := batch.NewRunner(nec.Default(),
		batch.WithLogger(*log),
		batch.WithConcurrency(concurrency),
		batch.WithChunkSize(chunkSize),
		batch.WithProgress(func(progress *batch.Progress) {
			p := progress.Snapshot()
			log.Debug().
				Int("processed", p.ProcessedItems).
				Int("total", p.TotalItems).
				Float64("percent", p.PercentComplete).
				Msg("batch progress")
		}),
	)
	if err != nil {
		return &ExitError{ExitCode: ExitUsage, Reason: err.Error()}
	}
	rep, err := runner.Run(cmd.Context(), f)
	if err != nil {
		return &ExitError{ExitCode: ExitUsage, Reason: err.Error()}
	}
	if err = r.Batch(rep); err != nil {
		return err
	}
	if n := rep.Failures(); n > 0 {
		return &ExitError{
			ExitCode: ExitDiagnostics,
			Reason:   fmt.Sprintf("%d of %d circuits failed", n, len(rep.Results)),
		}
	}
	return nil
}
