package nec

import (
	"fmt"
	"strings"
)

// Metal is the conductor material.
type Metal int

const (
	// Copper conductors.
	Copper Metal = iota
	// Aluminum conductors, including copper-clad aluminum.
	Aluminum
)

// String returns the lower-case metal name.
func (m Metal) String() string {
	switch m {
	case Copper:
		return "copper"
	case Aluminum:
		return "aluminum"
	default:
		return fmt.Sprintf("Metal(%d)", int(m))
	}
}

// ParseMetal parses "copper"/"cu" or "aluminum"/"aluminium"/"al".
func ParseMetal(name string) (Metal, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "copper", "cu":
		return Copper, true
	case "aluminum", "aluminium", "al":
		return Aluminum, true
	default:
		return Copper, false
	}
}

// MarshalText encodes the metal name.
func (m Metal) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText decodes a metal name accepted by ParseMetal.
func (m *Metal) UnmarshalText(text []byte) error {
	parsed, ok := ParseMetal(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMetal, string(text))
	}
	*m = parsed
	return nil
}

// ConduitMaterial is the raceway material. It selects the AC resistance column
// and whether the magnetic reactance column applies.
type ConduitMaterial int

const (
	// PVC is non-metallic conduit. Free-air and bundled installations use its columns.
	PVC ConduitMaterial = iota
	// AluminumConduit is non-magnetic metal conduit.
	AluminumConduit
	// SteelConduit is magnetic metal conduit.
	SteelConduit
)

// IsMagnetic reports whether the material uses the magnetic reactance column.
func (c ConduitMaterial) IsMagnetic() bool { return c == SteelConduit }

// String returns the material name.
func (c ConduitMaterial) String() string {
	switch c {
	case PVC:
		return "PVC"
	case AluminumConduit:
		return "aluminum"
	case SteelConduit:
		return "steel"
	default:
		return fmt.Sprintf("ConduitMaterial(%d)", int(c))
	}
}

// ParseConduitMaterial parses "pvc", "aluminum"/"al" or "steel".
// "none" and "free-air" map to PVC, whose columns apply outside conduit.
func ParseConduitMaterial(name string) (ConduitMaterial, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pvc", "none", "free-air", "":
		return PVC, true
	case "aluminum", "aluminium", "al":
		return AluminumConduit, true
	case "steel":
		return SteelConduit, true
	default:
		return PVC, false
	}
}

// MarshalText encodes the material name.
func (c ConduitMaterial) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText decodes a material accepted by ParseConduitMaterial.
func (c *ConduitMaterial) UnmarshalText(text []byte) error {
	parsed, ok := ParseConduitMaterial(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMaterial, string(text))
	}
	*c = parsed
	return nil
}

// TradeSize is a conduit trade size, ordered from smallest to largest.
type TradeSize int

const (
	// TradeSizeInvalid is returned when no trade size applies.
	TradeSizeInvalid TradeSize = iota - 1
	Trade1_2
	Trade3_4
	Trade1
	Trade1_1_4
	Trade1_1_2
	Trade2
	Trade2_1_2
	Trade3
	Trade3_1_2
	Trade4
	Trade5
	Trade6

	tradeSizeCount = int(Trade6) + 1
)

//nolint:gochecknoglobals // Fixed lookup table indexed by TradeSize.
var tradeSizeNames = [tradeSizeCount]string{
	"1/2", "3/4", "1", "1-1/4", "1-1/2", "2", "2-1/2", "3", "3-1/2", "4", "5", "6",
}

// TradeSizes returns every trade size in ascending order.
func TradeSizes() []TradeSize {
	out := make([]TradeSize, tradeSizeCount)
	for i := range tradeSizeCount {
		out[i] = TradeSize(i)
	}
	return out
}

// String returns the trade designation, e.g. "1-1/4".
func (t TradeSize) String() string {
	if t < Trade1_2 || t > Trade6 {
		return fmt.Sprintf("TradeSize(%d)", int(t))
	}
	return tradeSizeNames[t]
}

// ParseTradeSize parses a trade designation such as "3/4" or "1-1/2".
func ParseTradeSize(name string) (TradeSize, bool) {
	n := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), "\""))
	for i, candidate := range tradeSizeNames {
		if candidate == n {
			return TradeSize(i), true
		}
	}
	return TradeSizeInvalid, false
}

// MarshalText encodes the trade designation. Invalid trade sizes encode as "".
func (t TradeSize) MarshalText() ([]byte, error) {
	if t < Trade1_2 || t > Trade6 {
		return []byte{}, nil
	}
	return []byte(tradeSizeNames[t]), nil
}

// UnmarshalText decodes a designation accepted by ParseTradeSize.
func (t *TradeSize) UnmarshalText(text []byte) error {
	ts, ok := ParseTradeSize(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTradeSize, text)
	}
	*t = ts
	return nil
}
