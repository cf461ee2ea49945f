// Package vdrop computes AC and DC voltage drop for a conductor or cable,
// searches for the smallest size that meets a drop target, and solves for the
// longest run a size can serve.
//
// Calculations never fail with an error. Out-of-domain inputs and targets that
// cannot be met are reported through the diag.Messages carried by every
// result, alongside neutral values (0 or nec.SizeInvalid).
package vdrop

import (
	"math"
	"math/cmplx"

	"github.com/rs/zerolog"

	"github.com/rshade/ampacity/internal/diag"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
)

// Engine runs voltage-drop calculations against a property table.
type Engine struct {
	props  nec.Properties
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output of searches and solves.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New returns an Engine reading resistance and reactance from props.
func New(props nec.Properties, opts ...Option) (*Engine, error) {
	if props == nil {
		return nil, ErrNilProperties
	}
	e := &Engine{props: props, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With().Str("component", "vdrop").Logger()
	return e, nil
}

// Drop is the voltage drop of one circuit.
type Drop struct {
	Size          nec.Size      `json:"size"`
	VoltageAtLoad float64       `json:"voltage_at_load"`
	DropVolts     float64       `json:"drop_volts"`
	DropPercent   float64       `json:"drop_percent"`
	Ampacity      float64       `json:"ampacity"`
	Messages      diag.Messages `json:"diagnostics"`
}

// Sizing is the result of a minimum-size search. When Found is false Size is
// nec.SizeInvalid and the numeric fields are 0.
type Sizing struct {
	Found         bool          `json:"found"`
	Size          nec.Size      `json:"size"`
	DropPercent   float64       `json:"drop_percent"`
	VoltageAtLoad float64       `json:"voltage_at_load"`
	MaxLength     float64       `json:"max_length_ft"`
	Ampacity      float64       `json:"ampacity"`
	Messages      diag.Messages `json:"diagnostics"`
}

// Length is the result of a maximum-length solve.
type Length struct {
	Found     bool          `json:"found"`
	Size      nec.Size      `json:"size"`
	MaxLength float64       `json:"max_length_ft"`
	Messages  diag.Messages `json:"diagnostics"`
}

// circuit is a calculation's view of one conduitable under fixed parameters.
type circuit struct {
	snap raceway.Snapshot
	p    Params
	ac   bool
}

func (e *Engine) newCircuit(c raceway.Conduitable, p Params, ac bool) circuit {
	return circuit{snap: raceway.Snap(c), p: p, ac: ac}
}

// resistancePerKft returns the per-1000 ft resistance of size s, or 0 when the
// table has no entry for it.
func (e *Engine) resistancePerKft(ci circuit, s nec.Size) float64 {
	if ci.ac {
		return e.props.ACResistance(s, ci.snap.Metal, ci.snap.Material)
	}
	return e.props.DCResistance(s, ci.snap.Metal, ci.snap.Coated)
}

func (e *Engine) reactancePerKft(ci circuit, s nec.Size) float64 {
	return e.props.Reactance(s, ci.snap.Material.IsMagnetic())
}

// multiplier is the circuit factor k: 2 for single phase and √3 for three phase.
func multiplier(phases int) float64 {
	if phases == ThreePhase {
		return math.Sqrt(ThreePhase)
	}
	return kSinglePhase
}

// voltageAtLoad returns the voltage at the load for size s over lengthFt. It
// returns 0 when the drop consumes the whole source voltage.
func (e *Engine) voltageAtLoad(ci circuit, s nec.Size, lengthFt float64) float64 {
	scale := lengthFt / perThousandFeet / float64(ci.p.Sets)
	r := e.resistancePerKft(ci, s) * scale
	if !ci.ac {
		return max(ci.p.SourceVoltage-2*r*ci.p.Current, 0) //nolint:mnd // Supply and return conductor.
	}

	x := e.reactancePerKft(ci, s) * scale
	k := multiplier(ci.p.Phases)
	load := cmplx.Rect(ci.p.Current, -math.Acos(ci.p.PowerFactor))
	drop := complex(k*r, k*x) * load
	atLoad := complex(ci.p.SourceVoltage, 0) - drop
	// Past this point the magnitude grows again and would read as a gain.
	if real(atLoad) <= 0 {
		return 0
	}
	return cmplx.Abs(atLoad)
}

func dropPercent(source, atLoad float64) float64 {
	return percent * (source - atLoad) / source
}

// ampacityAt is the derated ampacity the conduitable would have at size s.
func (e *Engine) ampacityAt(ci circuit, s nec.Size) float64 {
	table := e.props.Ampacity(s, ci.snap.Metal, ci.snap.Insulation.Rating())
	return table * ci.snap.Compound()
}

// checkAmpacity warns when the current per set exceeds the ampacity.
func checkAmpacity(m *diag.Messages, ci circuit, s nec.Size, ampacity float64) {
	perSet := ci.p.Current / float64(ci.p.Sets)
	if perSet > ampacity {
		m.Warnf(diag.CodeAmpacityExceeded,
			"%.1f A per set exceeds the %.1f A ampacity of %s", perSet, ampacity, s)
	}
}

// checkParallel warns when parallel sets use conductors smaller than 1/0.
func checkParallel(m *diag.Messages, sets int, s nec.Size) bool {
	if sets > 1 && s.Less(nec.Size1_0) {
		m.Warnf(diag.CodeParallelBelow1_0,
			"%d sets of %s: conductors smaller than 1/0 may not be run in parallel", sets, s)
		return true
	}
	return false
}
