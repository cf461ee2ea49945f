package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Chunking configuration.
const (
	// DefaultChunkSize is the number of circuits handed to one worker at a time.
	DefaultChunkSize = 16
	// MinChunkSize is the minimum allowed chunk size.
	MinChunkSize = 1
	// MaxChunkSize is the maximum allowed chunk size.
	MaxChunkSize = 1000
)

// ChunkCallback processes one chunk of items. offset is the index of the
// chunk's first item in the full slice.
type ChunkCallback[T any] func(ctx context.Context, chunk []T, offset int) error

// ProgressCallback is invoked after each chunk completes.
type ProgressCallback func(progress *Progress)

// Processor splits items into fixed-size chunks and processes them
// sequentially or on a bounded number of goroutines.
type Processor[T any] struct {
	chunkSize  int
	onProgress ProgressCallback
}

// NewProcessor creates a processor with the given chunk size.
func NewProcessor[T any](chunkSize int) (*Processor[T], error) {
	if chunkSize < MinChunkSize || chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, chunkSize)
	}
	return &Processor[T]{chunkSize: chunkSize}, nil
}

// NewProcessorWithDefaults creates a processor using DefaultChunkSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{chunkSize: DefaultChunkSize}
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// ChunkSize returns the configured chunk size.
func (p *Processor[T]) ChunkSize() int {
	return p.chunkSize
}

// Process handles the chunks one after another and stops on the first error.
func (p *Processor[T]) Process(ctx context.Context, items []T, callback ChunkCallback[T]) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}

	chunks := p.Chunks(len(items))
	progress := NewProgress(len(items), len(chunks))
	for i, bounds := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk := items[bounds[0]:bounds[1]]
		if err := callback(ctx, chunk, bounds[0]); err != nil {
			return fmt.Errorf("chunk %d failed: %w", i, err)
		}
		p.report(progress, len(chunk))
	}
	return nil
}

// ProcessConcurrent handles the chunks on at most limit goroutines. The first
// error cancels the context passed to the remaining callbacks and is returned.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	callback ChunkCallback[T],
	limit int,
) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}
	if limit < 1 {
		limit = 1
	}

	chunks := p.Chunks(len(items))
	progress := NewProgress(len(items), len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, bounds := range chunks {
		chunk := items[bounds[0]:bounds[1]]
		offset := bounds[0]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := callback(gctx, chunk, offset); err != nil {
				return fmt.Errorf("chunk %d failed: %w", i, err)
			}
			p.report(progress, len(chunk))
			return nil
		})
	}
	return g.Wait()
}

// Chunks returns the [start, end) bounds of each chunk for total items.
func (p *Processor[T]) Chunks(total int) [][2]int {
	count := total / p.chunkSize
	if total%p.chunkSize > 0 {
		count++
	}
	chunks := make([][2]int, count)
	for i := range count {
		start := i * p.chunkSize
		chunks[i] = [2]int{start, min(start+p.chunkSize, total)}
	}
	return chunks
}

func (p *Processor[T]) report(progress *Progress, done int) {
	progress.AddProcessed(done)
	if p.onProgress != nil {
		p.onProgress(progress)
	}
}
