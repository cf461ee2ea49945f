package raceway

import (
	"math"
	"strings"

	"github.com/rshade/ampacity/internal/derating"
	"github.com/rshade/ampacity/internal/nec"
)

// CableType is the construction of a multi-conductor cable.
type CableType int

const (
	CableAC  CableType = iota // armored cable
	CableMC                   // metal-clad cable
	CableNM                   // nonmetallic-sheathed
	CableNMC                  // nonmetallic-sheathed, corrosion resistant
	CableNMS                  // nonmetallic-sheathed with signaling
	CableSE                   // service entrance
	CableUSE                  // underground service entrance
	CableUF                   // underground feeder
	CableTC                   // power and control tray
	CableMV                   // medium voltage
)

//nolint:gochecknoglobals // Lookup table for CableType names.
var cableTypeNames = [...]string{"AC", "MC", "NM", "NMC", "NMS", "SE", "USE", "UF", "TC", "MV"}

// String returns the cable type designation.
func (t CableType) String() string {
	if t < CableAC || int(t) >= len(cableTypeNames) {
		return "unknown"
	}
	return cableTypeNames[t]
}

// ParseCableType looks up a cable type by designation, case-insensitively.
func ParseCableType(name string) (CableType, bool) {
	for i, n := range cableTypeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return CableType(i), true
		}
	}
	return CableAC, false
}

// isArmored reports whether the cable is AC or MC.
func (t CableType) isArmored() bool { return t == CableAC || t == CableMC }

// VoltageSystem describes the supply a cable is wired for: how many ungrounded
// conductors it carries and whether it has a neutral.
type VoltageSystem struct {
	Name       string
	Voltage    float64
	Phases     int
	Wires      int
	Hots       int
	HasNeutral bool
}

// NeutralIsCCC reports whether the neutral of this system counts as a
// current-carrying conductor. nonlinear marks a 3-phase 4-wire wye feeding
// mostly nonlinear loads.
func (v VoltageSystem) NeutralIsCCC(nonlinear bool) bool {
	switch {
	case !v.HasNeutral:
		return false
	case v.Hots == 1:
		return true
	case v.Phases == 3 && v.Hots == 2: //nolint:mnd // Two phases of a wye.
		return true
	case v.Phases == 3 && v.Hots == 3: //nolint:mnd // Full wye.
		return nonlinear
	default:
		return false
	}
}

// Common voltage systems.
//
//nolint:gochecknoglobals // Immutable catalog values.
var (
	AC120_1Ph2W      = VoltageSystem{Name: "120V 1Φ 2W", Voltage: 120, Phases: 1, Wires: 2, Hots: 1, HasNeutral: true}
	AC240_1Ph2W      = VoltageSystem{Name: "240V 1Φ 2W", Voltage: 240, Phases: 1, Wires: 2, Hots: 2}
	AC120_240_1Ph3W  = VoltageSystem{Name: "120/240V 1Φ 3W", Voltage: 240, Phases: 1, Wires: 3, Hots: 2, HasNeutral: true}
	AC277_1Ph2W      = VoltageSystem{Name: "277V 1Φ 2W", Voltage: 277, Phases: 1, Wires: 2, Hots: 1, HasNeutral: true}
	AC208_120_3Ph3W  = VoltageSystem{Name: "208Y/120V 3Φ 3W", Voltage: 208, Phases: 3, Wires: 3, Hots: 2, HasNeutral: true}
	AC208_3Ph3W      = VoltageSystem{Name: "208V 3Φ 3W", Voltage: 208, Phases: 3, Wires: 3, Hots: 3}
	AC208_120_3Ph4W  = VoltageSystem{Name: "208Y/120V 3Φ 4W", Voltage: 208, Phases: 3, Wires: 4, Hots: 3, HasNeutral: true}
	AC480_277_3Ph3W  = VoltageSystem{Name: "480Y/277V 3Φ 3W", Voltage: 480, Phases: 3, Wires: 3, Hots: 2, HasNeutral: true}
	AC480_3Ph3W      = VoltageSystem{Name: "480V 3Φ 3W", Voltage: 480, Phases: 3, Wires: 3, Hots: 3}
	AC480_277_3Ph4W  = VoltageSystem{Name: "480Y/277V 3Φ 4W", Voltage: 480, Phases: 3, Wires: 4, Hots: 3, HasNeutral: true}
	DC2W             = VoltageSystem{Name: "DC 2W", Phases: 0, Wires: 2, Hots: 1, HasNeutral: true}
	voltageSystemAll = []VoltageSystem{
		AC120_1Ph2W, AC240_1Ph2W, AC120_240_1Ph3W, AC277_1Ph2W,
		AC208_120_3Ph3W, AC208_3Ph3W, AC208_120_3Ph4W,
		AC480_277_3Ph3W, AC480_3Ph3W, AC480_277_3Ph4W, DC2W,
	}
)

// VoltageSystems returns the catalog of known voltage systems.
func VoltageSystems() []VoltageSystem {
	out := make([]VoltageSystem, len(voltageSystemAll))
	copy(out, voltageSystemAll)
	return out
}

// ParseVoltageSystem finds a catalog entry by name, ignoring case, spaces and
// the "ph"/"Φ" spelling difference.
func ParseVoltageSystem(name string) (VoltageSystem, bool) {
	key := systemKey(name)
	for _, v := range voltageSystemAll {
		if systemKey(v.Name) == key {
			return v, true
		}
	}
	return VoltageSystem{}, false
}

func systemKey(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "φ", "ph")
	return strings.Join(strings.Fields(s), "")
}

// DefaultOuterDiameterIn is the outer diameter given to new cables.
const DefaultOuterDiameterIn = 0.5

// Cable is a multi-conductor assembly. Its phase, neutral and grounding
// conductors follow the cable's metal, insulation, length, ambient temperature
// and coating.
type Cable struct {
	base
	cableType     CableType
	jacketed      bool
	outerDiameter float64
	system        VoltageSystem
	nonlinear     bool

	phases   []*Conductor
	neutral  *Conductor
	grounded *Conductor
}

var _ Conduitable = (*Cable)(nil)

// NewCable returns an MC cable wired for system with the package defaults. It
// panics if props is nil.
func NewCable(props nec.Properties, system VoltageSystem) *Cable {
	c := &Cable{
		base:          newBase(props),
		cableType:     CableMC,
		outerDiameter: DefaultOuterDiameterIn,
	}
	c.self = c
	c.grounded = c.newInner(RoleGrounding)
	c.rewire(system)
	return c
}

func (c *Cable) newInner(role Role) *Conductor {
	in := NewConductor(c.props)
	in.role = role
	in.size = c.size
	in.metal = c.metal
	in.insulation = c.insulation
	in.lengthFt = c.lengthFt
	in.ambientF, in.ambientC = c.ambientF, c.ambientC
	in.coated = c.coated
	return in
}

// rewire rebuilds the phase and neutral conductors for system.
func (c *Cable) rewire(system VoltageSystem) {
	c.system = system
	hots := min(max(system.Hots, 1), 3) //nolint:mnd // At most three phases.
	c.phases = make([]*Conductor, hots)
	for i := range c.phases {
		c.phases[i] = c.newInner(RoleHot)
	}
	c.neutral = nil
	if system.HasNeutral {
		c.neutral = c.newInner(c.neutralRole())
	}
}

func (c *Cable) neutralRole() Role {
	if c.system.NeutralIsCCC(c.nonlinear) {
		return RoleNeutralCCC
	}
	return RoleNeutral
}

// each calls fn for every inner conductor.
func (c *Cable) each(fn func(*Conductor)) {
	for _, p := range c.phases {
		fn(p)
	}
	if c.neutral != nil {
		fn(c.neutral)
	}
	fn(c.grounded)
}

// Type returns the cable type.
func (c *Cable) Type() CableType {
	defer c.rlock()()
	return c.cableType
}

// SetType sets the cable type.
func (c *Cable) SetType(t CableType) {
	defer c.lock()()
	c.cableType = t
}

// Jacketed reports whether the cable has an overall nonmetallic jacket.
func (c *Cable) Jacketed() bool {
	defer c.rlock()()
	return c.jacketed
}

// SetJacketed sets the jacket flag.
func (c *Cable) SetJacketed(j bool) {
	defer c.lock()()
	c.jacketed = j
}

// OuterDiameter returns the outer diameter in inches.
func (c *Cable) OuterDiameter() float64 {
	defer c.rlock()()
	return c.outerDiameter
}

// SetOuterDiameter sets the outer diameter in inches.
func (c *Cable) SetOuterDiameter(in float64) {
	defer c.lock()()
	c.outerDiameter = in
}

// VoltageSystem returns the system the cable is wired for.
func (c *Cable) VoltageSystem() VoltageSystem {
	defer c.rlock()()
	return c.system
}

// SetVoltageSystem rewires the cable for system. The neutral size resets to the
// phase size.
func (c *Cable) SetVoltageSystem(system VoltageSystem) {
	defer c.lock()()
	c.rewire(system)
}

// NonlinearLoad reports whether the cable feeds mostly nonlinear loads.
func (c *Cable) NonlinearLoad() bool {
	defer c.rlock()()
	return c.nonlinear
}

// SetNonlinearLoad sets the nonlinear-load flag, which decides whether the
// neutral of a 3-phase 4-wire system is current-carrying.
func (c *Cable) SetNonlinearLoad(nonlinear bool) {
	defer c.lock()()
	c.nonlinear = nonlinear
	if c.neutral != nil {
		c.neutral.role = c.neutralRole()
	}
}

// Hots returns the number of phase conductors.
func (c *Cable) Hots() int {
	defer c.rlock()()
	return len(c.phases)
}

// HasNeutral reports whether the cable carries a neutral.
func (c *Cable) HasNeutral() bool {
	defer c.rlock()()
	return c.neutral != nil
}

// NeutralRole returns the role of the neutral, or false if there is none.
func (c *Cable) NeutralRole() (Role, bool) {
	defer c.rlock()()
	if c.neutral == nil {
		return RoleNeutral, false
	}
	return c.neutral.role, true
}

// NeutralSize returns the neutral size, or SizeInvalid if there is none.
func (c *Cable) NeutralSize() nec.Size {
	defer c.rlock()()
	if c.neutral == nil {
		return nec.SizeInvalid
	}
	return c.neutral.size
}

// SetNeutralSize sizes the neutral independently of the phases. It has no
// effect on a cable without a neutral.
func (c *Cable) SetNeutralSize(s nec.Size) {
	defer c.lock()()
	if c.neutral != nil {
		c.neutral.size = s
	}
}

// GroundingSize returns the size of the grounding conductor.
func (c *Cable) GroundingSize() nec.Size {
	defer c.rlock()()
	return c.grounded.size
}

// SetGroundingSize sizes the grounding conductor independently of the phases.
func (c *Cable) SetGroundingSize(s nec.Size) {
	defer c.lock()()
	c.grounded.size = s
}

// SetSize sets the size of the phase conductors and the neutral.
func (c *Cable) SetSize(s nec.Size) {
	defer c.lock()()
	c.size = s
	for _, p := range c.phases {
		p.size = s
	}
	if c.neutral != nil {
		c.neutral.size = s
	}
}

// SetMetal sets the metal of every conductor in the cable.
func (c *Cable) SetMetal(m nec.Metal) {
	defer c.lock()()
	c.metal = m
	c.each(func(in *Conductor) { in.metal = m })
}

// SetInsulation sets the insulation of every conductor in the cable.
func (c *Cable) SetInsulation(i nec.Insulation) {
	defer c.lock()()
	c.applyInsulation(i)
}

// SetLength sets the length of every conductor in the cable.
func (c *Cable) SetLength(ft float64) {
	defer c.lock()()
	c.lengthFt = ft
	c.each(func(in *Conductor) { in.lengthFt = ft })
}

// SetCoated sets the coating flag of every conductor in the cable.
func (c *Cable) SetCoated(coated bool) {
	defer c.lock()()
	c.coated = coated
	c.each(func(in *Conductor) { in.coated = coated })
}

func (c *Cable) applyAmbient(f, cel int) {
	c.ambientF, c.ambientC = f, cel
	c.each(func(in *Conductor) { in.applyAmbient(f, cel) })
}

func (c *Cable) applyInsulation(i nec.Insulation) {
	c.insulation = i
	c.each(func(in *Conductor) { in.applyInsulation(i) })
}

func (c *Cable) currentCarrying() int {
	n := 0
	c.each(func(in *Conductor) { n += in.currentCarrying() })
	return n
}

func (c *Cable) fillArea() float64 {
	return math.Pi / 4 * c.outerDiameter * c.outerDiameter //nolint:mnd // Area of a circle.
}

func (c *Cable) aloneAdjustment() float64 {
	return derating.AdjustmentFactor(c.currentCarrying(), unboundedLengthIn)
}

// qualifiesForBundleException reports whether the cable is an unjacketed AC or
// MC cable, the construction both free-air bundle exceptions require.
func (c *Cable) qualifiesForBundleException() bool {
	return c.cableType.isArmored() && !c.jacketed
}

// isTwelveCopper reports whether the phase conductors are 12 AWG copper.
func (c *Cable) isTwelveCopper() bool {
	for _, p := range c.phases {
		if p.size != nec.Size12 || p.metal != nec.Copper {
			return false
		}
	}
	return true
}
