package vdrop

import (
	"github.com/rshade/ampacity/internal/diag"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
)

// SizeAC returns the smallest size of c's metal whose AC drop under p does not
// exceed p.MaxDropPercent. The conduitable itself is not modified.
func (e *Engine) SizeAC(c raceway.Conduitable, p Params) Sizing {
	return e.size(e.newCircuit(c, p, true))
}

// SizeDC is SizeAC for a DC circuit.
func (e *Engine) SizeDC(c raceway.Conduitable, p Params) Sizing {
	return e.size(e.newCircuit(c, p, false))
}

func (e *Engine) size(ci circuit) Sizing {
	out := Sizing{Size: nec.SizeInvalid}
	out.Messages = validate(ci.p, ci.snap, check{ac: ci.ac, length: true, maxDrop: true})
	if out.Messages.HasErrors() {
		return out
	}

	warned := false
	for _, s := range nec.Sizes() {
		if e.resistancePerKft(ci, s) <= 0 {
			continue
		}
		if !warned {
			warned = checkParallel(&out.Messages, ci.p.Sets, s)
		}

		atLoad := e.voltageAtLoad(ci, s, ci.snap.LengthFt)
		pct := dropPercent(ci.p.SourceVoltage, atLoad)
		e.logger.Debug().
			Str("mode", kind(ci)).
			Stringer("size", s).
			Float64("drop_pct", pct).
			Float64("target_pct", ci.p.MaxDropPercent).
			Msg("size candidate")
		if pct > ci.p.MaxDropPercent {
			continue
		}

		out.Found = true
		out.Size = s
		out.DropPercent = pct
		out.VoltageAtLoad = atLoad
		out.MaxLength, _ = e.maxLength(ci, s)
		out.Ampacity = e.ampacityAt(ci, s)
		checkAmpacity(&out.Messages, ci, s, out.Ampacity)
		return out
	}

	out.Messages.Errorf(diag.CodeNoSizeAchievesTarget,
		"no %s %s conductor keeps the drop over %g ft within %g %%",
		kind(ci), ci.snap.Metal, ci.snap.LengthFt, ci.p.MaxDropPercent)
	return out
}
