package raceway

import (
	"github.com/rshade/ampacity/internal/nec"
)

// Role is the function of a conductor in its circuit.
type Role int

const (
	// RoleHot is an ungrounded conductor.
	RoleHot Role = iota
	// RoleNeutralCCC is a neutral that counts as current-carrying.
	RoleNeutralCCC
	// RoleNeutral is a neutral that carries only unbalanced current.
	RoleNeutral
	// RoleGrounding is an equipment grounding conductor.
	RoleGrounding
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleHot:
		return "hot"
	case RoleNeutralCCC:
		return "neutral-ccc"
	case RoleNeutral:
		return "neutral"
	case RoleGrounding:
		return "grounding"
	default:
		return "unknown"
	}
}

// IsCurrentCarrying reports whether a conductor in this role counts toward the
// current-carrying total of its container.
func (r Role) IsCurrentCarrying() bool {
	return r == RoleHot || r == RoleNeutralCCC
}

// Conductor is a single insulated conductor.
type Conductor struct {
	base
	role Role
}

var _ Conduitable = (*Conductor)(nil)

// NewConductor returns a hot conductor with the package defaults. It panics if
// props is nil.
func NewConductor(props nec.Properties) *Conductor {
	c := &Conductor{base: newBase(props), role: RoleHot}
	c.self = c
	return c
}

// Role returns the conductor's role.
func (c *Conductor) Role() Role {
	defer c.rlock()()
	return c.role
}

// SetRole changes the conductor's role.
func (c *Conductor) SetRole(r Role) {
	defer c.lock()()
	c.role = r
}

// SetSize implements Conduitable.
func (c *Conductor) SetSize(s nec.Size) {
	defer c.lock()()
	c.size = s
}

// SetMetal implements Conduitable.
func (c *Conductor) SetMetal(m nec.Metal) {
	defer c.lock()()
	c.metal = m
}

// SetInsulation implements Conduitable.
func (c *Conductor) SetInsulation(i nec.Insulation) {
	defer c.lock()()
	c.applyInsulation(i)
}

// SetLength implements Conduitable.
func (c *Conductor) SetLength(ft float64) {
	defer c.lock()()
	c.lengthFt = ft
}

// SetCoated implements Conduitable.
func (c *Conductor) SetCoated(coated bool) {
	defer c.lock()()
	c.coated = coated
}

func (c *Conductor) applyAmbient(f, cel int) {
	c.ambientF, c.ambientC = f, cel
}

func (c *Conductor) applyInsulation(i nec.Insulation) {
	c.insulation = i
}

func (c *Conductor) currentCarrying() int {
	if c.role.IsCurrentCarrying() {
		return 1
	}
	return 0
}

func (c *Conductor) fillArea() float64 {
	return c.props.InsulatedArea(c.size, c.insulation)
}

func (c *Conductor) aloneAdjustment() float64 { return 1 }
