package vdrop

import (
	"github.com/rshade/ampacity/internal/diag"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
)

// DropAC returns the AC voltage drop of c under p. The drop is computed from
// the phasor of a constant-current load lagging the source by arccos(pf).
func (e *Engine) DropAC(c raceway.Conduitable, p Params) Drop {
	return e.drop(e.newCircuit(c, p, true))
}

// DropDC returns the DC voltage drop of c under p over the supply and return
// conductors.
func (e *Engine) DropDC(c raceway.Conduitable, p Params) Drop {
	return e.drop(e.newCircuit(c, p, false))
}

func (e *Engine) drop(ci circuit) Drop {
	out := Drop{Size: nec.SizeInvalid}
	out.Messages = validate(ci.p, ci.snap, check{ac: ci.ac, size: true, length: true})
	if out.Messages.HasErrors() {
		return out
	}
	s := ci.snap.Size
	if e.resistancePerKft(ci, s) <= 0 {
		out.Messages.Errorf(diag.CodeInvalidSize,
			"no %s resistance is tabulated for %s %s", kind(ci), s, ci.snap.Metal)
		return out
	}

	atLoad := e.voltageAtLoad(ci, s, ci.snap.LengthFt)
	out.Size = s
	out.VoltageAtLoad = atLoad
	out.DropVolts = ci.p.SourceVoltage - atLoad
	out.DropPercent = dropPercent(ci.p.SourceVoltage, atLoad)
	out.Ampacity = ci.snap.Ampacity

	if atLoad <= 0 {
		out.Messages.Errorf(diag.CodeSourceExhausted,
			"the %s drop of %s over %g ft at %g A consumes the whole %g V source",
			kind(ci), s, ci.snap.LengthFt, ci.p.Current, ci.p.SourceVoltage)
	}
	checkParallel(&out.Messages, ci.p.Sets, s)
	checkAmpacity(&out.Messages, ci, s, out.Ampacity)

	e.logger.Debug().
		Str("mode", kind(ci)).
		Stringer("size", s).
		Float64("length_ft", ci.snap.LengthFt).
		Float64("drop_pct", out.DropPercent).
		Msg("voltage drop computed")
	return out
}

func kind(ci circuit) string {
	if ci.ac {
		return "AC"
	}
	return "DC"
}
