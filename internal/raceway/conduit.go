package raceway

import (
	"math"

	"github.com/rshade/ampacity/internal/derating"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/units"
)

// Allowed conduit fill, in percent of the conduit's internal area.
const (
	FillOneMemberPercent  = 53.0
	FillTwoMembersPercent = 31.0
	FillOverTwoPercent    = 40.0
	FillNipplePercent     = 60.0
)

const fillTwoMembers = 2

// unboundedLengthIn stands for a raceway longer than any nipple.
const unboundedLengthIn = math.MaxFloat64

// Conduit is a raceway holding conductors and cables. Its members share one
// ambient temperature and one adjustment factor.
type Conduit struct {
	group
	props      nec.Properties
	material   nec.ConduitMaterial
	nipple     bool
	rooftopIn  float64
	hasRooftop bool
}

// NewConduit returns an empty PVC conduit. It panics if props is nil.
func NewConduit(props nec.Properties) *Conduit {
	if props == nil {
		panic("raceway: nil nec.Properties")
	}
	return &Conduit{
		group: group{
			ambientF: DefaultAmbientF,
			ambientC: units.FahrenheitToCelsius(DefaultAmbientF),
		},
		props:    props,
		material: nec.PVC,
	}
}

// Add moves m into the conduit, taking it out of any conduit or bundle it was
// in. Adding a current member is a no-op.
func (c *Conduit) Add(m Conduitable) {
	defer lockMembership()()
	c.join(m, membership{conduit: c})
}

// Remove takes m out of the conduit if it is a member.
func (c *Conduit) Remove(m Conduitable) {
	defer lockMembership()()
	if m.core().home.conduit == c {
		leave(m)
	}
}

// Contains reports whether m is a member.
func (c *Conduit) Contains(m Conduitable) bool {
	defer c.rlock()()
	return c.contains(m)
}

// Members returns the members in insertion order.
func (c *Conduit) Members() []Conduitable {
	defer c.rlock()()
	return c.snapshot()
}

// Len returns the number of members.
func (c *Conduit) Len() int {
	defer c.rlock()()
	return len(c.members)
}

// CurrentCarryingCount returns the number of current-carrying conductors in
// the conduit.
func (c *Conduit) CurrentCarryingCount() int {
	defer c.rlock()()
	return c.currentCarrying()
}

// AmbientTemperatureF returns the shared ambient temperature in °F.
func (c *Conduit) AmbientTemperatureF() int {
	defer c.rlock()()
	return c.ambientF
}

// AmbientTemperatureC returns the shared ambient temperature in °C.
func (c *Conduit) AmbientTemperatureC() int {
	defer c.rlock()()
	return c.ambientC
}

// SetAmbientTemperatureF sets the ambient temperature of the conduit and every
// member.
func (c *Conduit) SetAmbientTemperatureF(f int) {
	defer c.lock()()
	c.setAmbient(f, units.FahrenheitToCelsius(f))
}

// SetAmbientTemperatureC sets the ambient temperature of the conduit and every
// member.
func (c *Conduit) SetAmbientTemperatureC(cel int) {
	defer c.lock()()
	c.setAmbient(units.CelsiusToFahrenheit(cel), cel)
}

// Material returns the conduit material.
func (c *Conduit) Material() nec.ConduitMaterial {
	defer c.rlock()()
	return c.material
}

// SetMaterial sets the conduit material.
func (c *Conduit) SetMaterial(m nec.ConduitMaterial) {
	defer c.lock()()
	c.material = m
}

// IsNipple reports whether the conduit is a nipple of 24 in or less.
func (c *Conduit) IsNipple() bool {
	defer c.rlock()()
	return c.nipple
}

// SetNipple marks the conduit as a nipple, which disables adjustment and
// allows 60 % fill.
func (c *Conduit) SetNipple(nipple bool) {
	defer c.lock()()
	c.nipple = nipple
}

// RooftopDistance returns the height above the rooftop in inches, if set.
func (c *Conduit) RooftopDistance() (float64, bool) {
	defer c.rlock()()
	return c.rooftopIn, c.hasRooftop
}

// SetRooftopDistance places the conduit in = inches above a rooftop exposed to
// sunlight.
func (c *Conduit) SetRooftopDistance(in float64) {
	defer c.lock()()
	c.rooftopIn, c.hasRooftop = in, true
}

// ClearRooftopDistance removes the rooftop condition.
func (c *Conduit) ClearRooftopDistance() {
	defer c.lock()()
	c.rooftopIn, c.hasRooftop = 0, false
}

// AdjustmentFactor returns the adjustment factor every member uses.
func (c *Conduit) AdjustmentFactor() float64 {
	defer c.rlock()()
	return c.adjustment()
}

func (c *Conduit) adjustment() float64 {
	if c.nipple {
		return 1
	}
	return derating.AdjustmentFactor(c.currentCarrying(), unboundedLengthIn)
}

// FillArea returns the summed cross-section of all members in in².
func (c *Conduit) FillArea() float64 {
	defer c.rlock()()
	return c.fillArea()
}

func (c *Conduit) fillArea() float64 {
	total := 0.0
	for _, m := range c.members {
		total += m.fillArea()
	}
	return total
}

// AllowedFillPercent returns the maximum fill for the current member count.
func (c *Conduit) AllowedFillPercent() float64 {
	defer c.rlock()()
	return c.allowedFill()
}

func (c *Conduit) allowedFill() float64 {
	switch {
	case c.nipple:
		return FillNipplePercent
	case len(c.members) <= 1:
		return FillOneMemberPercent
	case len(c.members) == fillTwoMembers:
		return FillTwoMembersPercent
	default:
		return FillOverTwoPercent
	}
}

// FillPercent returns the fill of a conduit of trade size t in percent, or 0 if
// the size is not tabulated for the material.
func (c *Conduit) FillPercent(t nec.TradeSize) float64 {
	defer c.rlock()()
	area := c.props.ConduitArea(t, c.material)
	if area <= 0 {
		return 0
	}
	return 100 * c.fillArea() / area //nolint:mnd // Percent.
}

// MinTradeSize returns the smallest trade size whose allowed fill holds every
// member. It returns false if no tabulated size is large enough.
func (c *Conduit) MinTradeSize() (nec.TradeSize, bool) {
	defer c.rlock()()
	need := c.fillArea()
	allowed := c.allowedFill()
	for _, t := range nec.TradeSizes() {
		area := c.props.ConduitArea(t, c.material)
		if area <= 0 {
			continue
		}
		if need <= area*allowed/100 { //nolint:mnd // Percent.
			return t, true
		}
	}
	return nec.TradeSizeInvalid, false
}
