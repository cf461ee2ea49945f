package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Process(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("Sequential", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)
		var processed, chunks int32
		var offsets []int
		err = p.Process(context.Background(), items, func(_ context.Context, chunk []int, offset int) error {
			atomic.AddInt32(&chunks, 1)
			atomic.AddInt32(&processed, int32(len(chunk)))
			offsets = append(offsets, offset)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int32(25), processed)
		assert.Equal(t, int32(3), chunks)
		assert.Equal(t, []int{0, 10, 20}, offsets)
	})

	t.Run("Concurrent", func(t *testing.T) {
		p, err := NewProcessor[int](5)
		require.NoError(t, err)
		var sum int64
		err = p.ProcessConcurrent(context.Background(), items, func(_ context.Context, chunk []int, offset int) error {
			for i, v := range chunk {
				assert.Equal(t, offset+i, v)
				atomic.AddInt64(&sum, int64(v))
			}
			return nil
		}, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(300), sum)
	})

	t.Run("ErrorHandling", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)
		err = p.Process(context.Background(), items, func(_ context.Context, _ []int, offset int) error {
			if offset == 10 {
				return errors.New("fail")
			}
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chunk 1 failed")
	})

	t.Run("ConcurrentError", func(t *testing.T) {
		p, err := NewProcessor[int](5)
		require.NoError(t, err)
		boom := errors.New("boom")
		err = p.ProcessConcurrent(context.Background(), items, func(_ context.Context, _ []int, offset int) error {
			if offset == 15 {
				return boom
			}
			return nil
		}, 3)
		require.ErrorIs(t, err, boom)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := NewProcessorWithDefaults[int]()
		err := p.Process(ctx, items, func(context.Context, []int, int) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("EmptyItems", func(t *testing.T) {
		p := NewProcessorWithDefaults[int]()
		assert.ErrorIs(t, p.Process(context.Background(), nil, nil), ErrEmptyItems)
	})

	t.Run("NilCallback", func(t *testing.T) {
		p := NewProcessorWithDefaults[int]()
		assert.ErrorIs(t, p.ProcessConcurrent(context.Background(), items, nil, 1), ErrNilCallback)
	})

	t.Run("InvalidChunkSize", func(t *testing.T) {
		_, err := NewProcessor[int](0)
		require.ErrorIs(t, err, ErrInvalidChunkSize)
		_, err = NewProcessor[int](2000)
		require.ErrorIs(t, err, ErrInvalidChunkSize)
	})
}

func TestProcessor_Chunks(t *testing.T) {
	p, err := NewProcessor[int](10)
	require.NoError(t, err)

	chunks := p.Chunks(25)
	require.Len(t, chunks, 3)
	assert.Equal(t, [2]int{0, 10}, chunks[0])
	assert.Equal(t, [2]int{10, 20}, chunks[1])
	assert.Equal(t, [2]int{20, 25}, chunks[2])
	assert.Equal(t, 10, p.ChunkSize())
	assert.Empty(t, p.Chunks(0))
}

func TestProgress(t *testing.T) {
	p := NewProgress(100, 10)
	assert.Zero(t, p.PercentComplete())
	assert.False(t, p.IsComplete())
	assert.Zero(t, p.EstimatedTimeRemaining())

	p.AddProcessed(10)
	assert.InDelta(t, 10.0, p.PercentComplete(), 1e-9)

	p.AddProcessed(90)
	assert.InDelta(t, 100.0, p.PercentComplete(), 1e-9)
	assert.True(t, p.IsComplete())

	snap := p.Snapshot()
	assert.Equal(t, 100, snap.ProcessedItems)
	assert.Equal(t, 2, snap.ProcessedChunks)
	assert.Equal(t, 10, snap.TotalChunks)
}

func TestProcessor_ProgressCallback(t *testing.T) {
	var calls int32
	var last ProgressSnapshot
	p, err := NewProcessor[int](4)
	require.NoError(t, err)
	p.WithProgressCallback(func(pr *Progress) {
		atomic.AddInt32(&calls, 1)
		last = pr.Snapshot()
	})

	err = p.Process(context.Background(), make([]int, 10), func(context.Context, []int, int) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls)
	assert.Equal(t, 10, last.ProcessedItems)
}
