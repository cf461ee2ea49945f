package batch

import (
	"context"
	"crypto/rand"
	"runtime"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/rshade/ampacity/internal/diag"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
	"github.com/rshade/ampacity/internal/vdrop"
)

// Result is the outcome of one circuit. Exactly one of Drop, Sizing and Length
// is set when Error is empty.
type Result struct {
	Index     int              `json:"index"`
	Name      string           `json:"name"`
	Mode      string           `json:"mode"`
	Task      string           `json:"task"`
	Conductor raceway.Snapshot `json:"conductor"`
	Params    vdrop.Params     `json:"params"`
	Drop      *vdrop.Drop      `json:"drop,omitempty"`
	Sizing    *vdrop.Sizing    `json:"sizing,omitempty"`
	Length    *vdrop.Length    `json:"length,omitempty"`
	// Error is set when the circuit entry could not be built.
	Error string `json:"error,omitempty"`
}

// Messages returns the diagnostics of whichever calculation ran.
func (r Result) Messages() diag.Messages {
	switch {
	case r.Drop != nil:
		return r.Drop.Messages
	case r.Sizing != nil:
		return r.Sizing.Messages
	case r.Length != nil:
		return r.Length.Messages
	default:
		return diag.Messages{}
	}
}

// Failed reports whether the circuit could not be built or its calculation
// returned error diagnostics.
func (r Result) Failed() bool {
	return r.Error != "" || r.Messages().HasErrors()
}

// Report is the outcome of a whole run.
type Report struct {
	RunID    string        `json:"run_id"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration_ns"`
	Results  []Result      `json:"results"`
}

// Failures returns the number of failed circuits.
func (r *Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Failed() {
			n++
		}
	}
	return n
}

// Runner evaluates circuits files.
type Runner struct {
	props      nec.Properties
	engine     *vdrop.Engine
	logger     zerolog.Logger
	limit      int
	chunkSize  int
	onProgress ProgressCallback
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for per-circuit debug output.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithConcurrency bounds the number of chunks evaluated at once. Values below
// 1 select runtime.NumCPU.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) { r.limit = n }
}

// WithChunkSize sets the number of circuits handed to a worker at a time.
func WithChunkSize(n int) RunnerOption {
	return func(r *Runner) { r.chunkSize = n }
}

// WithProgress sets a callback invoked after each chunk.
func WithProgress(fn ProgressCallback) RunnerOption {
	return func(r *Runner) { r.onProgress = fn }
}

// NewRunner returns a Runner using props for every circuit.
func NewRunner(props nec.Properties, opts ...RunnerOption) (*Runner, error) {
	r := &Runner{
		props:     props,
		logger:    zerolog.Nop(),
		limit:     runtime.NumCPU(),
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.limit < 1 {
		r.limit = runtime.NumCPU()
	}
	engine, err := vdrop.New(props, vdrop.WithLogger(r.logger))
	if err != nil {
		return nil, err
	}
	r.engine = engine
	r.logger = r.logger.With().Str("component", "batch").Logger()
	return r, nil
}

// Run evaluates every circuit of f. Circuit-level problems are recorded in the
// results; the returned error is non-nil only for invalid options or a
// cancelled context.
func (r *Runner) Run(ctx context.Context, f *File) (*Report, error) {
	if f == nil || len(f.Circuits) == 0 {
		return nil, ErrNoCircuits
	}
	proc, err := NewProcessor[Circuit](r.chunkSize)
	if err != nil {
		return nil, err
	}
	proc.WithProgressCallback(r.onProgress)

	rep := &Report{
		RunID:   ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		Started: time.Now(),
		Results: make([]Result, len(f.Circuits)),
	}
	log := r.logger.With().Str("run_id", rep.RunID).Logger()
	log.Debug().Int("circuits", len(f.Circuits)).Int("limit", r.limit).Msg("batch run started")

	err = proc.ProcessConcurrent(ctx, f.Circuits, func(ctx context.Context, chunk []Circuit, offset int) error {
		for i, c := range chunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each index is written by exactly one goroutine.
			rep.Results[offset+i] = r.evaluate(offset+i, c.WithDefaults(f.Defaults))
		}
		return nil
	}, r.limit)
	rep.Duration = time.Since(rep.Started)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("failures", rep.Failures()).
		Dur("duration", rep.Duration).
		Msg("batch run finished")
	return rep, nil
}

func (r *Runner) evaluate(index int, c Circuit) Result {
	res := Result{
		Index:  index,
		Name:   c.Name,
		Mode:   c.Mode,
		Task:   c.Task,
		Params: c.Params(),
	}
	conduitable, err := c.Build(r.props)
	if err != nil {
		r.logger.Debug().Err(err).Int("index", index).Msg("circuit rejected")
		res.Error = err.Error()
		return res
	}

	p := res.Params
	ac := c.Mode == ModeAC
	switch c.Task {
	case TaskSize:
		var s vdrop.Sizing
		if ac {
			s = r.engine.SizeAC(conduitable, p)
		} else {
			s = r.engine.SizeDC(conduitable, p)
		}
		if s.Found {
			conduitable.SetSize(s.Size)
		}
		res.Sizing = &s
	case TaskLength:
		var l vdrop.Length
		if ac {
			l = r.engine.MaxLengthAC(conduitable, p)
		} else {
			l = r.engine.MaxLengthDC(conduitable, p)
		}
		res.Length = &l
	default:
		var d vdrop.Drop
		if ac {
			d = r.engine.DropAC(conduitable, p)
		} else {
			d = r.engine.DropDC(conduitable, p)
		}
		res.Drop = &d
	}
	res.Conductor = raceway.Snap(conduitable)
	return res
}
