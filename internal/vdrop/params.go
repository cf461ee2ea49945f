package vdrop

import (
	"github.com/rshade/ampacity/internal/diag"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
)

// Validation limits for circuit parameters.
const (
	MaxSourceVoltage  = 2000.0
	MinSets           = 1
	MaxSets           = 10
	MinPowerFactor    = 0.7
	MaxPowerFactor    = 1.0
	MaxDropLimit      = 25.0
	DefaultMaxDrop    = 3.0
	SinglePhase       = 1
	ThreePhase        = 3
	kSinglePhase      = 2.0
	percent           = 100.0
	perThousandFeet   = 1000.0
	dcMaxLengthFactor = 200.0
)

// Params are the circuit parameters of a calculation. Length, size, metal and
// coating come from the conduitable.
type Params struct {
	SourceVoltage  float64 `json:"source_voltage" yaml:"source_voltage"`
	Phases         int     `json:"phases"         yaml:"phases"`
	Sets           int     `json:"sets"           yaml:"sets"`
	Current        float64 `json:"current"        yaml:"current"`
	PowerFactor    float64 `json:"power_factor"   yaml:"power_factor"`
	MaxDropPercent float64 `json:"max_drop"       yaml:"max_drop"`
}

// DefaultParams returns a 120 V single-phase circuit with one set, unity power
// factor and a 3 % drop target. Current must still be supplied.
func DefaultParams() Params {
	return Params{
		SourceVoltage:  120,
		Phases:         SinglePhase,
		Sets:           1,
		PowerFactor:    1,
		MaxDropPercent: DefaultMaxDrop,
	}
}

// check selects which inputs a calculation depends on.
type check struct {
	ac      bool
	size    bool
	length  bool
	maxDrop bool
}

// validate reports every out-of-domain input that the calculation depends on.
func validate(p Params, s raceway.Snapshot, c check) diag.Messages {
	var m diag.Messages
	if p.SourceVoltage <= 0 || p.SourceVoltage > MaxSourceVoltage {
		m.Errorf(diag.CodeInvalidSourceVoltage,
			"source voltage %g V is outside (0, %g]", p.SourceVoltage, MaxSourceVoltage)
	}
	if c.ac && p.Phases != SinglePhase && p.Phases != ThreePhase {
		m.Errorf(diag.CodeInvalidPhases, "phases must be 1 or 3, got %d", p.Phases)
	}
	if c.size && !nec.IsValidSize(s.Size) {
		m.Errorf(diag.CodeInvalidSize, "conductor size %s is not valid", s.Size)
	}
	if p.Sets < MinSets || p.Sets > MaxSets {
		m.Errorf(diag.CodeInvalidSets, "sets must be between %d and %d, got %d", MinSets, MaxSets, p.Sets)
	}
	if c.length && s.LengthFt <= 0 {
		m.Errorf(diag.CodeInvalidLength, "length must be positive, got %g ft", s.LengthFt)
	}
	if p.Current <= 0 {
		m.Errorf(diag.CodeInvalidCurrent, "current must be positive, got %g A", p.Current)
	}
	if c.ac && (p.PowerFactor < MinPowerFactor || p.PowerFactor > MaxPowerFactor) {
		m.Errorf(diag.CodeInvalidPowerFactor,
			"power factor must be between %g and %g, got %g", MinPowerFactor, MaxPowerFactor, p.PowerFactor)
	}
	if c.maxDrop && (p.MaxDropPercent <= 0 || p.MaxDropPercent > MaxDropLimit) {
		m.Errorf(diag.CodeInvalidMaxDrop,
			"maximum drop must be in (0, %g] %%, got %g", MaxDropLimit, p.MaxDropPercent)
	}
	return m
}
