package vdrop

import (
	"math"

	"github.com/rshade/ampacity/internal/diag"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
)

// MaxLengthAC returns the longest one-way run of c's size whose AC drop under p
// equals p.MaxDropPercent.
//
// The voltage at the load is |Vs − L·(A + jB)| with A and B the in-phase and
// quadrature drop per foot. Setting it to Vs·(1 − d) gives a quadratic in L
// whose smaller root is the physical one; the larger would put the load above
// the source voltage.
func (e *Engine) MaxLengthAC(c raceway.Conduitable, p Params) Length {
	return e.length(e.newCircuit(c, p, true))
}

// MaxLengthDC returns the longest one-way run of c's size whose DC drop under p
// equals p.MaxDropPercent.
func (e *Engine) MaxLengthDC(c raceway.Conduitable, p Params) Length {
	return e.length(e.newCircuit(c, p, false))
}

func (e *Engine) length(ci circuit) Length {
	out := Length{Size: nec.SizeInvalid}
	out.Messages = validate(ci.p, ci.snap, check{ac: ci.ac, size: true, maxDrop: true})
	if out.Messages.HasErrors() {
		return out
	}
	s := ci.snap.Size
	if e.resistancePerKft(ci, s) <= 0 {
		out.Messages.Errorf(diag.CodeInvalidSize,
			"no %s resistance is tabulated for %s %s", kind(ci), s, ci.snap.Metal)
		return out
	}

	out.Size = s
	l, ok := e.maxLength(ci, s)
	if !ok {
		out.Messages.Errorf(diag.CodeNoLengthAchievesTarget,
			"no length of %s keeps the %s drop within %g %%", s, kind(ci), ci.p.MaxDropPercent)
		return out
	}
	out.Found = true
	out.MaxLength = l
	checkParallel(&out.Messages, ci.p.Sets, s)
	return out
}

// maxLength solves for the one-way length of size s at the drop target. It
// returns false when no positive length exists.
func (e *Engine) maxLength(ci circuit, s nec.Size) (float64, bool) {
	var l float64
	if ci.ac {
		l = e.maxLengthAC(ci, s)
	} else {
		l = e.maxLengthDC(ci, s)
	}
	if l <= 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		e.logger.Debug().
			Str("mode", kind(ci)).
			Stringer("size", s).
			Float64("solution", l).
			Msg("no positive length solves the drop target")
		return 0, false
	}
	return l, true
}

// maxLengthAC returns the smaller root of the length quadratic, or the
// non-positive discriminant when there is no real root.
func (e *Engine) maxLengthAC(ci circuit, s nec.Size) float64 {
	sets := float64(ci.p.Sets)
	r := e.resistancePerKft(ci, s) / perThousandFeet / sets
	x := e.reactancePerKft(ci, s) / perThousandFeet / sets

	k := multiplier(ci.p.Phases)
	pf := ci.p.PowerFactor
	sin := math.Sin(math.Acos(pf))
	vs := ci.p.SourceVoltage
	remaining := 1 - ci.p.MaxDropPercent/percent

	a := k * ci.p.Current * (r*pf + x*sin)
	b := k * ci.p.Current * (x*pf - r*sin)
	c := vs * vs * (1 - remaining*remaining)
	quad := a*a + b*b
	disc := 4*vs*vs*a*a - 4*quad*c //nolint:mnd // Quadratic formula.
	if disc < 0 || quad == 0 {
		return min(disc, 0)
	}
	return (2*vs*a - math.Sqrt(disc)) / (2 * quad) //nolint:mnd // Quadratic formula.
}

// maxLengthDC inverts Vd = 2·I·r·L/1000/sets.
func (e *Engine) maxLengthDC(ci circuit, s nec.Size) float64 {
	r := e.resistancePerKft(ci, s)
	return ci.p.SourceVoltage * ci.p.MaxDropPercent * perThousandFeet * float64(ci.p.Sets) /
		(dcMaxLengthFactor * ci.p.Current * r)
}
