package batch

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ampacity/internal/config"
	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/raceway"
	"github.com/rshade/ampacity/internal/units"
	"github.com/rshade/ampacity/internal/vdrop"
)

// FileVersion is the circuits file schema written by this build.
const FileVersion = "1.0.0"

// supportedFileVersions is the range of circuits file versions this build reads.
const supportedFileVersions = "^1.0.0"

// Circuit calculation modes.
const (
	ModeAC = "ac"
	ModeDC = "dc"
)

// Circuit tasks.
const (
	// TaskDrop computes the drop of the given size.
	TaskDrop = "drop"
	// TaskSize searches for the smallest size meeting the drop target.
	TaskSize = "size"
	// TaskLength solves for the longest run of the given size.
	TaskLength = "length"
)

// File is a parsed circuits file.
type File struct {
	Version  string                `yaml:"version"`
	Defaults config.DefaultsConfig `yaml:"defaults"`
	Circuits []Circuit             `yaml:"circuits"`
}

// Circuit is one circuit entry. Zero numeric fields and empty strings take the
// file defaults.
type Circuit struct {
	Name       string `yaml:"name"`
	Mode       string `yaml:"mode"`
	Task       string `yaml:"task"`
	Size       string `yaml:"size"`
	Metal      string `yaml:"metal"`
	Insulation string `yaml:"insulation"`
	// Length accepts a unit suffix, e.g. "150 ft", "45m" or "600in".
	Length   string `yaml:"length"`
	AmbientF int    `yaml:"ambient_f"`
	Coated   bool   `yaml:"coated"`

	Current        float64 `yaml:"current"`
	SourceVoltage  float64 `yaml:"source_voltage"`
	Phases         int     `yaml:"phases"`
	Sets           int     `yaml:"sets"`
	PowerFactor    float64 `yaml:"power_factor"`
	MaxDropPercent float64 `yaml:"max_drop"`

	Conduit *ConduitSpec `yaml:"conduit"`
	Bundle  *BundleSpec  `yaml:"bundle"`
	Cable   *CableSpec   `yaml:"cable"`
}

// ConduitSpec places the circuit in a conduit.
type ConduitSpec struct {
	Material string `yaml:"material"`
	Nipple   bool   `yaml:"nipple"`
	// RooftopIn is the height above a rooftop in inches. Nil means not on a roof.
	RooftopIn *float64 `yaml:"rooftop_in"`
	// Count is the number of identical circuits sharing the conduit. Zero means 1.
	Count int `yaml:"count"`
}

// BundleSpec bundles the circuit in free air with identical siblings.
type BundleSpec struct {
	// Count is the number of identical circuits in the bundle. Zero means 1.
	Count int `yaml:"count"`
	// LengthIn is the bundled length in inches. Bundles of 24 in or less,
	// including the zero default, are not adjusted.
	LengthIn float64 `yaml:"length_in"`
}

// CableSpec replaces the single conductor with a multi-conductor cable.
type CableSpec struct {
	Type      string `yaml:"type"`
	System    string `yaml:"system"`
	Jacketed  bool   `yaml:"jacketed"`
	Nonlinear bool   `yaml:"nonlinear"`
}

// Load reads and parses a circuits file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading circuits file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a circuits file. Defaults not given in the file are taken from
// config.Default.
func Parse(data []byte) (*File, error) {
	f := &File{Defaults: config.Default().Defaults}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing circuits file: %w", err)
	}
	if f.Version == "" {
		f.Version = FileVersion
	}
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}
	if len(f.Circuits) == 0 {
		return nil, ErrNoCircuits
	}
	return f, nil
}

func checkVersion(v string) error {
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, v, err)
	}
	constraint, err := semver.NewConstraint(supportedFileVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, ver, supportedFileVersions)
	}
	return nil
}

// WithDefaults returns c with every unset field taken from d.
func (c Circuit) WithDefaults(d config.DefaultsConfig) Circuit {
	c.Mode = orString(strings.ToLower(c.Mode), ModeAC)
	c.Task = orString(strings.ToLower(c.Task), TaskDrop)
	c.Metal = orString(c.Metal, d.Metal)
	c.Insulation = orString(c.Insulation, d.Insulation)
	c.AmbientF = orValue(c.AmbientF, d.AmbientF)
	c.SourceVoltage = orValue(c.SourceVoltage, d.SourceVoltage)
	c.Phases = orValue(c.Phases, d.Phases)
	c.Sets = orValue(c.Sets, d.Sets)
	c.PowerFactor = orValue(c.PowerFactor, d.PowerFactor)
	c.MaxDropPercent = orValue(c.MaxDropPercent, d.MaxDropPercent)
	if c.Conduit != nil {
		spec := *c.Conduit
		spec.Material = orString(spec.Material, d.Conduit)
		c.Conduit = &spec
	}
	return c
}

// Params returns the calculation parameters of the circuit.
func (c Circuit) Params() vdrop.Params {
	return vdrop.Params{
		SourceVoltage:  c.SourceVoltage,
		Phases:         c.Phases,
		Sets:           c.Sets,
		Current:        c.Current,
		PowerFactor:    c.PowerFactor,
		MaxDropPercent: c.MaxDropPercent,
	}
}

// Build creates the conduitable the circuit describes, placing it and Count-1
// identical siblings in a conduit or bundle when one is given. Fields are
// validated for their syntax only; domain checks are left to the engine so
// that they are reported as diagnostics.
func (c Circuit) Build(props nec.Properties) (raceway.Conduitable, error) {
	if c.Mode != ModeAC && c.Mode != ModeDC {
		return nil, c.invalid("mode %q", c.Mode)
	}
	switch c.Task {
	case TaskDrop, TaskSize, TaskLength:
	default:
		return nil, c.invalid("task %q", c.Task)
	}

	size := nec.SizeInvalid
	if c.Size != "" {
		s, ok := nec.ParseSize(c.Size)
		if !ok {
			return nil, c.invalid("size %q", c.Size)
		}
		size = s
	} else if c.Task != TaskSize {
		return nil, c.invalid("size is required for task %s", c.Task)
	}
	metal, ok := nec.ParseMetal(c.Metal)
	if !ok {
		return nil, c.invalid("metal %q", c.Metal)
	}
	insulation, ok := nec.ParseInsulation(c.Insulation)
	if !ok {
		return nil, c.invalid("insulation %q", c.Insulation)
	}
	var lengthFt float64
	if c.Length != "" {
		ft, err := units.ParseLength(c.Length)
		if err != nil {
			return nil, c.invalid("length %q: %v", c.Length, err)
		}
		lengthFt = ft
	}

	newMember := func() (raceway.Conduitable, error) {
		m, err := c.newMember(props)
		if err != nil {
			return nil, err
		}
		if size != nec.SizeInvalid {
			m.SetSize(size)
		}
		m.SetMetal(metal)
		m.SetInsulation(insulation)
		m.SetLength(lengthFt)
		m.SetCoated(c.Coated)
		m.SetAmbientTemperatureF(c.AmbientF)
		return m, nil
	}

	if c.Conduit != nil && c.Bundle != nil {
		return nil, c.invalid("a circuit cannot be both in a conduit and in a bundle")
	}
	primary, err := newMember()
	if err != nil {
		return nil, err
	}

	var add func(raceway.Conduitable)
	count := 1
	switch {
	case c.Conduit != nil:
		conduit, err := c.newConduit(props)
		if err != nil {
			return nil, err
		}
		add, count = conduit.Add, c.Conduit.Count
	case c.Bundle != nil:
		bundle := raceway.NewBundle()
		bundle.SetAmbientTemperatureF(c.AmbientF)
		if c.Bundle.LengthIn > 0 {
			bundle.SetBundlingLength(c.Bundle.LengthIn)
		}
		add, count = bundle.Add, c.Bundle.Count
	default:
		return primary, nil
	}

	add(primary)
	for range max(count, 1) - 1 {
		sibling, err := newMember()
		if err != nil {
			return nil, err
		}
		add(sibling)
	}
	return primary, nil
}

func (c Circuit) newMember(props nec.Properties) (raceway.Conduitable, error) {
	if c.Cable == nil {
		return raceway.NewConductor(props), nil
	}
	system := raceway.AC120_240_1Ph3W
	if c.Cable.System != "" {
		s, ok := raceway.ParseVoltageSystem(c.Cable.System)
		if !ok {
			return nil, c.invalid("voltage system %q", c.Cable.System)
		}
		system = s
	}
	cable := raceway.NewCable(props, system)
	if c.Cable.Type != "" {
		t, ok := raceway.ParseCableType(c.Cable.Type)
		if !ok {
			return nil, c.invalid("cable type %q", c.Cable.Type)
		}
		cable.SetType(t)
	}
	cable.SetJacketed(c.Cable.Jacketed)
	cable.SetNonlinearLoad(c.Cable.Nonlinear)
	return cable, nil
}

func (c Circuit) newConduit(props nec.Properties) (*raceway.Conduit, error) {
	material, ok := nec.ParseConduitMaterial(c.Conduit.Material)
	if !ok {
		return nil, c.invalid("conduit material %q", c.Conduit.Material)
	}
	conduit := raceway.NewConduit(props)
	conduit.SetMaterial(material)
	conduit.SetNipple(c.Conduit.Nipple)
	conduit.SetAmbientTemperatureF(c.AmbientF)
	if c.Conduit.RooftopIn != nil {
		conduit.SetRooftopDistance(*c.Conduit.RooftopIn)
	}
	return conduit, nil
}

func (c Circuit) invalid(format string, args ...any) error {
	return fmt.Errorf("%w %q: "+format, append([]any{ErrInvalidCircuit, c.Name}, args...)...)
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orValue[T int | float64](v, fallback T) T {
	if v == 0 {
		return fallback
	}
	return v
}
