package raceway

import (
	"github.com/rshade/ampacity/internal/derating"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/units"
)

// Bundle is a group of conductors and cables run together in free air.
type Bundle struct {
	group
	lengthIn float64
}

// NewBundle returns an empty bundle with no bundling length, which behaves as
// unbundled until a length over 24 in is set.
func NewBundle() *Bundle {
	return &Bundle{
		group: group{
			ambientF: DefaultAmbientF,
			ambientC: units.FahrenheitToCelsius(DefaultAmbientF),
		},
	}
}

// Add moves m into the bundle, taking it out of any conduit or bundle it was
// in. Adding a current member is a no-op.
func (b *Bundle) Add(m Conduitable) {
	defer lockMembership()()
	b.join(m, membership{bundle: b})
}

// Remove takes m out of the bundle if it is a member.
func (b *Bundle) Remove(m Conduitable) {
	defer lockMembership()()
	if m.core().home.bundle == b {
		leave(m)
	}
}

// Contains reports whether m is a member.
func (b *Bundle) Contains(m Conduitable) bool {
	defer b.rlock()()
	return b.contains(m)
}

// Members returns the members in insertion order.
func (b *Bundle) Members() []Conduitable {
	defer b.rlock()()
	return b.snapshot()
}

// Len returns the number of members.
func (b *Bundle) Len() int {
	defer b.rlock()()
	return len(b.members)
}

// CurrentCarryingCount returns the number of current-carrying conductors in
// the bundle.
func (b *Bundle) CurrentCarryingCount() int {
	defer b.rlock()()
	return b.currentCarrying()
}

// AmbientTemperatureF returns the shared ambient temperature in °F.
func (b *Bundle) AmbientTemperatureF() int {
	defer b.rlock()()
	return b.ambientF
}

// AmbientTemperatureC returns the shared ambient temperature in °C.
func (b *Bundle) AmbientTemperatureC() int {
	defer b.rlock()()
	return b.ambientC
}

// SetAmbientTemperatureF sets the ambient temperature of the bundle and every
// member.
func (b *Bundle) SetAmbientTemperatureF(f int) {
	defer b.lock()()
	b.setAmbient(f, units.FahrenheitToCelsius(f))
}

// SetAmbientTemperatureC sets the ambient temperature of the bundle and every
// member.
func (b *Bundle) SetAmbientTemperatureC(c int) {
	defer b.lock()()
	b.setAmbient(units.CelsiusToFahrenheit(c), c)
}

// BundlingLength returns the length over which the members run together, in
// inches.
func (b *Bundle) BundlingLength() float64 {
	defer b.rlock()()
	return b.lengthIn
}

// SetBundlingLength sets the bundling length in inches.
func (b *Bundle) SetBundlingLength(in float64) {
	defer b.lock()()
	b.lengthIn = in
}

// QualifiesForNoAdjustment reports whether the bundle is exempt from
// adjustment: at most 20 current-carrying conductors, at least one cable,
// every cable an unjacketed AC or MC with no more than three current-carrying
// 12 AWG copper conductors, and every single conductor 12 AWG copper.
func (b *Bundle) QualifiesForNoAdjustment() bool {
	defer b.rlock()()
	return b.noAdjustment()
}

// QualifiesForSixtyPercent reports whether the bundle takes a flat 60 %
// adjustment: bundled over 24 in, more than 20 current-carrying conductors, and
// at least one cable with every cable an unjacketed AC or MC.
func (b *Bundle) QualifiesForSixtyPercent() bool {
	defer b.rlock()()
	return b.sixtyPercent()
}

// AdjustmentFactor returns the adjustment factor every member uses.
func (b *Bundle) AdjustmentFactor() float64 {
	defer b.rlock()()
	return b.adjustment()
}

func (b *Bundle) adjustment() float64 {
	switch {
	case b.noAdjustment():
		return 1
	case b.sixtyPercent():
		return derating.BundleSixtyPercentFactor
	default:
		return derating.AdjustmentFactor(b.currentCarrying(), b.lengthIn)
	}
}

func (b *Bundle) noAdjustment() bool {
	if b.currentCarrying() > derating.BundleMaxCCCWithoutAdjustment {
		return false
	}
	cables := 0
	for _, m := range b.members {
		switch v := m.(type) {
		case *Cable:
			cables++
			if !v.qualifiesForBundleException() ||
				v.currentCarrying() > derating.CableMaxCCCWithoutAdjustment ||
				!v.isTwelveCopper() {
				return false
			}
		case *Conductor:
			if v.size != nec.Size12 || v.metal != nec.Copper {
				return false
			}
		}
	}
	return cables > 0
}

func (b *Bundle) sixtyPercent() bool {
	if b.lengthIn <= derating.NippleLengthIn ||
		b.currentCarrying() <= derating.BundleMaxCCCWithoutAdjustment {
		return false
	}
	cables := 0
	for _, m := range b.members {
		if v, ok := m.(*Cable); ok {
			cables++
			if !v.qualifiesForBundleException() {
				return false
			}
		}
	}
	return cables > 0
}
