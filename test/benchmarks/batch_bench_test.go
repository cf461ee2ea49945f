package benchmarks_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rshade/ampacity/internal/batch"
	"github.com/rshade/ampacity/internal/config"
	"github.com/rshade/ampacity/internal/nec"
)

// generateCircuits builds a circuits file mixing every task.
func generateCircuits(count int) *batch.File {
	tasks := []string{batch.TaskDrop, batch.TaskSize, batch.TaskLength}
	f := &batch.File{Version: batch.FileVersion, Defaults: config.Default().Defaults}
	for i := 0; i < count; i++ {
		c := batch.Circuit{
			Name:    fmt.Sprintf("circuit-%d", i),
			Task:    tasks[i%len(tasks)],
			Length:  fmt.Sprintf("%d ft", 50+i%200),
			Current: float64(5 + i%40),
		}
		if c.Task != batch.TaskSize {
			c.Size = "4"
		}
		if i%5 == 0 {
			c.Conduit = &batch.ConduitSpec{Count: 3}
		}
		f.Circuits = append(f.Circuits, c)
	}
	return f
}

// BenchmarkBatchRun benchmarks a run over circuits files of increasing size.
func BenchmarkBatchRun(b *testing.B) {
	for _, count := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("circuits=%d", count), func(b *testing.B) {
			b.ReportAllocs()
			f := generateCircuits(count)
			r, err := batch.NewRunner(nec.Default())
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := r.Run(context.Background(), f); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
