// Package raceway models conductors and cables and the conduits and bundles
// that hold them, and computes their derated ampacity.
//
// A conduitable (a single Conductor or a multi-conductor Cable) belongs to at
// most one container at a time. Adding it to a Conduit or Bundle removes it from
// whatever container held it before, and all members of a container share one
// ambient temperature.
//
// Each object graph (a container and its members, or a conduitable standing
// alone) has its own lock, so independent graphs can be read and changed in
// parallel. Adding to or removing from a container moves conduitables between
// graphs and runs under a package-level membership lock held exclusively; every
// other exported method holds that lock shared and then locks its own graph.
package raceway

import (
	"sync"

	"github.com/rshade/ampacity/internal/derating"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/units"
)

// membershipMu guards which container each conduitable belongs to.
//
//nolint:gochecknoglobals // Membership changes span two graphs.
var membershipMu sync.RWMutex

func lockMembership() func() {
	membershipMu.Lock()
	return membershipMu.Unlock
}

// Defaults for newly created conduitables.
const (
	DefaultSize       = nec.Size12
	DefaultMetal      = nec.Copper
	DefaultInsulation = nec.THW
	DefaultLengthFt   = 100.0
	DefaultAmbientF   = units.NormalAmbientF
)

// Conduitable is the capability shared by Conductor and Cable: the properties
// that decide ampacity and voltage drop, and the queries for its derating
// factors in its current installation.
type Conduitable interface {
	Size() nec.Size
	Metal() nec.Metal
	Insulation() nec.Insulation
	// Length is the one-way length in feet.
	Length() float64
	AmbientTemperatureF() int
	AmbientTemperatureC() int
	Coated() bool
	// RooftopDistance returns the distance above a rooftop in inches, if set.
	RooftopDistance() (float64, bool)

	SetSize(s nec.Size)
	SetMetal(m nec.Metal)
	SetInsulation(i nec.Insulation)
	SetLength(ft float64)
	SetAmbientTemperatureF(f int)
	SetAmbientTemperatureC(c int)
	SetCoated(coated bool)
	SetRooftopDistance(in float64)
	ClearRooftopDistance()

	// Conduit returns the conduit holding this conduitable, or nil.
	Conduit() *Conduit
	// Bundle returns the bundle holding this conduitable, or nil.
	Bundle() *Bundle

	// CurrentCarryingCount is this conduitable's contribution to the
	// current-carrying count of its container.
	CurrentCarryingCount() int
	// InsulatedArea is the cross-section used for conduit fill, in in².
	InsulatedArea() float64

	CorrectionFactor() float64
	AdjustmentFactor() float64
	CompoundFactor() float64
	// CompoundFactorAt evaluates the compound factor as if the insulation were
	// the typical insulation for rating r. The insulation is restored afterwards.
	CompoundFactorAt(r nec.TempRating) float64
	// Ampacity is the tabulated ampacity at the insulation rating times the
	// compound factor.
	Ampacity() float64

	core() *base
	applyAmbient(f, c int)
	applyInsulation(i nec.Insulation)
	currentCarrying() int
	fillArea() float64
	aloneAdjustment() float64
}

// membership is the back-reference from a conduitable to its container. At most
// one of the two pointers is set.
type membership struct {
	conduit *Conduit
	bundle  *Bundle
}

func (m membership) empty() bool { return m.conduit == nil && m.bundle == nil }

// base holds the state common to conductors and cables.
type base struct {
	props      nec.Properties
	self       Conduitable
	size       nec.Size
	metal      nec.Metal
	insulation nec.Insulation
	lengthFt   float64
	ambientF   int
	ambientC   int
	coated     bool
	rooftopIn  float64
	hasRooftop bool
	home       membership
	// own locks the graph while the conduitable is in no container.
	own *sync.RWMutex
}

func newBase(props nec.Properties) base {
	if props == nil {
		panic("raceway: nil nec.Properties")
	}
	return base{
		props:      props,
		size:       DefaultSize,
		metal:      DefaultMetal,
		insulation: DefaultInsulation,
		lengthFt:   DefaultLengthFt,
		ambientF:   DefaultAmbientF,
		ambientC:   units.FahrenheitToCelsius(DefaultAmbientF),
		own:        new(sync.RWMutex),
	}
}

func (b *base) core() *base { return b }

// graphLock returns the lock of the graph b is in. The caller holds
// membershipMu.
func (b *base) graphLock() *sync.RWMutex {
	switch {
	case b.home.conduit != nil:
		return &b.home.conduit.mu
	case b.home.bundle != nil:
		return &b.home.bundle.mu
	default:
		return b.own
	}
}

func (b *base) rlock() func() {
	membershipMu.RLock()
	l := b.graphLock()
	l.RLock()
	return func() {
		l.RUnlock()
		membershipMu.RUnlock()
	}
}

func (b *base) lock() func() {
	membershipMu.RLock()
	l := b.graphLock()
	l.Lock()
	return func() {
		l.Unlock()
		membershipMu.RUnlock()
	}
}

// Size implements Conduitable.
func (b *base) Size() nec.Size {
	defer b.rlock()()
	return b.size
}

// Metal implements Conduitable.
func (b *base) Metal() nec.Metal {
	defer b.rlock()()
	return b.metal
}

// Insulation implements Conduitable.
func (b *base) Insulation() nec.Insulation {
	defer b.rlock()()
	return b.insulation
}

// Length implements Conduitable.
func (b *base) Length() float64 {
	defer b.rlock()()
	return b.lengthFt
}

// AmbientTemperatureF implements Conduitable.
func (b *base) AmbientTemperatureF() int {
	defer b.rlock()()
	return b.ambientF
}

// AmbientTemperatureC implements Conduitable.
func (b *base) AmbientTemperatureC() int {
	defer b.rlock()()
	return b.ambientC
}

// Coated implements Conduitable.
func (b *base) Coated() bool {
	defer b.rlock()()
	return b.coated
}

// RooftopDistance implements Conduitable.
func (b *base) RooftopDistance() (float64, bool) {
	defer b.rlock()()
	return b.rooftopIn, b.hasRooftop
}

// SetAmbientTemperatureF implements Conduitable. When the conduitable is in a
// container the temperature is applied to the whole container.
func (b *base) SetAmbientTemperatureF(f int) {
	defer b.lock()()
	b.setAmbient(f, units.FahrenheitToCelsius(f))
}

// SetAmbientTemperatureC implements Conduitable. When the conduitable is in a
// container the temperature is applied to the whole container.
func (b *base) SetAmbientTemperatureC(c int) {
	defer b.lock()()
	b.setAmbient(units.CelsiusToFahrenheit(c), c)
}

func (b *base) setAmbient(f, c int) {
	switch {
	case b.home.conduit != nil:
		b.home.conduit.setAmbient(f, c)
	case b.home.bundle != nil:
		b.home.bundle.setAmbient(f, c)
	default:
		b.self.applyAmbient(f, c)
	}
}

// SetRooftopDistance implements Conduitable. The distance only takes effect
// while the conduitable is not in a conduit.
func (b *base) SetRooftopDistance(in float64) {
	defer b.lock()()
	b.rooftopIn, b.hasRooftop = in, true
}

// ClearRooftopDistance implements Conduitable.
func (b *base) ClearRooftopDistance() {
	defer b.lock()()
	b.rooftopIn, b.hasRooftop = 0, false
}

// Conduit implements Conduitable.
func (b *base) Conduit() *Conduit {
	defer b.rlock()()
	return b.home.conduit
}

// Bundle implements Conduitable.
func (b *base) Bundle() *Bundle {
	defer b.rlock()()
	return b.home.bundle
}

// CurrentCarryingCount implements Conduitable.
func (b *base) CurrentCarryingCount() int {
	defer b.rlock()()
	return b.self.currentCarrying()
}

// InsulatedArea implements Conduitable.
func (b *base) InsulatedArea() float64 {
	defer b.rlock()()
	return b.self.fillArea()
}

// CorrectionFactor implements Conduitable.
func (b *base) CorrectionFactor() float64 {
	defer b.rlock()()
	return b.correction()
}

// AdjustmentFactor implements Conduitable.
func (b *base) AdjustmentFactor() float64 {
	defer b.rlock()()
	return b.adjustment()
}

// CompoundFactor implements Conduitable.
func (b *base) CompoundFactor() float64 {
	defer b.rlock()()
	return derating.CompoundFactor(b.correction(), b.adjustment())
}

// CompoundFactorAt implements Conduitable.
func (b *base) CompoundFactorAt(r nec.TempRating) float64 {
	defer b.lock()()

	original := b.insulation
	b.self.applyInsulation(nec.TypicalInsulation(r))
	defer b.self.applyInsulation(original)

	return derating.CompoundFactor(b.correction(), b.adjustment())
}

// Ampacity implements Conduitable.
func (b *base) Ampacity() float64 {
	defer b.rlock()()
	return b.ampacity()
}

func (b *base) ampacity() float64 {
	table := b.props.Ampacity(b.size, b.metal, b.insulation.Rating())
	return table * derating.CompoundFactor(b.correction(), b.adjustment())
}

// material is the conduit material, or PVC when the conduitable is bundled or
// in free air.
func (b *base) material() nec.ConduitMaterial {
	if b.home.conduit != nil {
		return b.home.conduit.material
	}
	return nec.PVC
}

// Snapshot is a consistent view of the properties of a conduitable that the
// voltage-drop and reporting code reads together.
type Snapshot struct {
	Size            nec.Size            `json:"size"`
	Metal           nec.Metal           `json:"metal"`
	Insulation      nec.Insulation      `json:"insulation"`
	LengthFt        float64             `json:"length_ft"`
	AmbientF        int                 `json:"ambient_f"`
	AmbientC        int                 `json:"ambient_c"`
	Coated          bool                `json:"coated"`
	Material        nec.ConduitMaterial `json:"material"`
	CurrentCarrying int                 `json:"current_carrying"`
	Correction      float64             `json:"correction_factor"`
	Adjustment      float64             `json:"adjustment_factor"`
	Ampacity        float64             `json:"ampacity"`
}

// Compound returns the product of the correction and adjustment factors.
func (s Snapshot) Compound() float64 {
	return derating.CompoundFactor(s.Correction, s.Adjustment)
}

// Snap reads c under one hold of its graph lock.
func Snap(c Conduitable) Snapshot {
	b := c.core()
	defer b.rlock()()
	return Snapshot{
		Size:            b.size,
		Metal:           b.metal,
		Insulation:      b.insulation,
		LengthFt:        b.lengthFt,
		AmbientF:        b.ambientF,
		AmbientC:        b.ambientC,
		Coated:          b.coated,
		Material:        b.material(),
		CurrentCarrying: c.currentCarrying(),
		Correction:      b.correction(),
		Adjustment:      b.adjustment(),
		Ampacity:        b.ampacity(),
	}
}

// effectiveAmbientF adds the rooftop adder of the conduit, or of the
// conduitable itself when it is not in a conduit.
func (b *base) effectiveAmbientF() int {
	f := b.ambientF
	if b.home.conduit != nil {
		if b.home.conduit.hasRooftop {
			f += derating.RooftopAdder(b.home.conduit.rooftopIn)
		}
		return f
	}
	if b.hasRooftop {
		f += derating.RooftopAdder(b.rooftopIn)
	}
	return f
}

func (b *base) correction() float64 {
	return derating.CorrectionFactor(b.effectiveAmbientF(), b.insulation.Rating())
}

func (b *base) adjustment() float64 {
	switch {
	case b.home.conduit != nil:
		return b.home.conduit.adjustment()
	case b.home.bundle != nil:
		return b.home.bundle.adjustment()
	default:
		return b.self.aloneAdjustment()
	}
}
