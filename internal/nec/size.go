// Package nec provides the tabulated conductor and raceway properties used by
// the derating and voltage-drop calculations.
//
// Every lookup is total: an invalid or untabulated key returns 0 rather than an
// error, so sizing loops can run without error handling. Callers validate their
// inputs first with IsValidSize, IsValidInsulationName and the Parse functions.
package nec

import (
	"fmt"
	"strings"
)

// Size is a conductor size. The declaration order is the strict total order used
// for comparisons and for ascending searches, and matches the row order of every
// property table.
type Size int

const (
	// SizeInvalid is the marker returned when no valid size applies.
	SizeInvalid Size = iota - 1
	Size14
	Size12
	Size10
	Size8
	Size6
	Size4
	Size3
	Size2
	Size1
	Size1_0
	Size2_0
	Size3_0
	Size4_0
	Size250
	Size300
	Size350
	Size400
	Size500
	Size600
	Size700
	Size750
	Size800
	Size900
	Size1000
	Size1250
	Size1500
	Size1750
	Size2000

	sizeCount = int(Size2000) + 1
)

//nolint:gochecknoglobals // Fixed lookup table indexed by Size.
var sizeNames = [sizeCount]string{
	"14", "12", "10", "8", "6", "4", "3", "2", "1",
	"1/0", "2/0", "3/0", "4/0",
	"250", "300", "350", "400", "500", "600", "700", "750", "800", "900",
	"1000", "1250", "1500", "1750", "2000",
}

// Sizes returns every valid size in ascending order.
func Sizes() []Size {
	out := make([]Size, sizeCount)
	for i := range sizeCount {
		out[i] = Size(i)
	}
	return out
}

// IsValidSize reports whether s is one of the enumerated sizes.
func IsValidSize(s Size) bool {
	return s >= Size14 && s <= Size2000
}

// Compare returns -1, 0 or +1 depending on whether a is smaller than, equal to
// or larger than b.
func Compare(a, b Size) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether s is smaller than other.
func (s Size) Less(other Size) bool { return s < other }

// AtLeast reports whether s is equal to or larger than other.
func (s Size) AtLeast(other Size) bool { return s >= other }

// IsKcmil reports whether the size is expressed in kcmil rather than AWG.
func (s Size) IsKcmil() bool { return s >= Size250 && s <= Size2000 }

// Name returns the bare size designation, e.g. "1/0" or "250".
func (s Size) Name() string {
	if !IsValidSize(s) {
		return ""
	}
	return sizeNames[s]
}

// String returns the designation with its unit, e.g. "12 AWG" or "500 kcmil".
func (s Size) String() string {
	if !IsValidSize(s) {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	if s.IsKcmil() {
		return sizeNames[s] + " kcmil"
	}
	return sizeNames[s] + " AWG"
}

// ParseSize parses a size designation. It accepts the bare name ("12", "1/0",
// "250") optionally followed by "AWG", "kcmil" or "MCM", case-insensitively.
// It returns SizeInvalid and false for anything else.
func ParseSize(name string) (Size, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range []string{"awg", "kcmil", "mcm"} {
		n = strings.TrimSpace(strings.TrimSuffix(n, suffix))
	}
	n = strings.TrimPrefix(n, "#")
	for i, candidate := range sizeNames {
		if candidate == n {
			return Size(i), true
		}
	}
	return SizeInvalid, false
}

// MarshalText encodes the size by its bare name. SizeInvalid encodes as "".
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.Name()), nil
}

// UnmarshalText decodes a size name accepted by ParseSize. An empty text
// decodes as SizeInvalid.
func (s *Size) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = SizeInvalid
		return nil
	}
	parsed, ok := ParseSize(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSize, string(text))
	}
	*s = parsed
	return nil
}
