package batch

import (
	"sync"
	"time"
)

// percentMultiplier converts a ratio to a percentage.
const percentMultiplier = 100

// Progress tracks how many circuits of a run have been evaluated. It is safe
// for concurrent use.
type Progress struct {
	mu sync.RWMutex

	totalItems      int
	processedItems  int
	totalChunks     int
	processedChunks int
	start           time.Time
	lastUpdate      time.Time
}

// NewProgress creates a tracker for totalItems items split into totalChunks chunks.
func NewProgress(totalItems, totalChunks int) *Progress {
	now := time.Now()
	return &Progress{
		totalItems:  totalItems,
		totalChunks: totalChunks,
		start:       now,
		lastUpdate:  now,
	}
}

// AddProcessed records a completed chunk of n items.
func (p *Progress) AddProcessed(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processedItems += n
	p.processedChunks++
	p.lastUpdate = time.Now()
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.percentComplete()
}

func (p *Progress) percentComplete() float64 {
	if p.totalItems == 0 {
		return 0
	}
	return float64(p.processedItems) / float64(p.totalItems) * percentMultiplier
}

// IsComplete reports whether every item has been processed.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.processedItems >= p.totalItems
}

// EstimatedTimeRemaining extrapolates the remaining time from the average
// time per item so far. It returns 0 before the first item completes.
func (p *Progress) EstimatedTimeRemaining() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.processedItems == 0 {
		return 0
	}
	perItem := time.Since(p.start) / time.Duration(p.processedItems)
	return perItem * time.Duration(p.totalItems-p.processedItems)
}

// Snapshot returns a consistent copy of the current state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ProgressSnapshot{
		TotalItems:      p.totalItems,
		ProcessedItems:  p.processedItems,
		TotalChunks:     p.totalChunks,
		ProcessedChunks: p.processedChunks,
		PercentComplete: p.percentComplete(),
		Elapsed:         p.lastUpdate.Sub(p.start),
	}
}

// ProgressSnapshot is an immutable copy of a Progress.
type ProgressSnapshot struct {
	TotalItems      int
	ProcessedItems  int
	TotalChunks     int
	ProcessedChunks int
	PercentComplete float64
	Elapsed         time.Duration
}
