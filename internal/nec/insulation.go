package nec

import (
	"fmt"
	"strings"
)

// TempRating is the temperature rating of a conductor insulation, in °C.
type TempRating int

const (
	// TempRatingInvalid is returned for unclassified insulation.
	TempRatingInvalid TempRating = 0
	// T60 is the 60 °C column.
	T60 TempRating = 60
	// T75 is the 75 °C column.
	T75 TempRating = 75
	// T90 is the 90 °C column.
	T90 TempRating = 90
)

// String returns the rating, e.g. "75°C".
func (r TempRating) String() string {
	return fmt.Sprintf("%d°C", int(r))
}

// IsValid reports whether r is one of the three tabulated ratings.
func (r TempRating) IsValid() bool {
	return r == T60 || r == T75 || r == T90
}

// Column returns the index of the rating's column in tables ordered 60, 75
// and 90 °C. It returns false for an unclassified rating.
func (r TempRating) Column() (int, bool) {
	switch r {
	case T60:
		return 0, true
	case T75:
		return 1, true
	case T90:
		return 2, true //nolint:mnd // Third rating column.
	default:
		return 0, false
	}
}

// Insulation is an insulation code from the fixed catalog. Each code has a
// permanent temperature classification.
type Insulation int

// Insulation catalog.
const (
	InsulationInvalid Insulation = iota - 1
	TW
	UF
	RHW
	THHW
	THW
	THWN
	XHHW
	USE
	ZW
	TBS
	SA
	SIS
	FEP
	FEPB
	MI
	RHH
	RHW2
	THHN
	THW2
	THWN2
	USE2
	XHH
	XHHW2
	ZW2

	insulationCount = int(ZW2) + 1
)

type insulationInfo struct {
	name   string
	rating TempRating
}

//nolint:gochecknoglobals // Immutable classification table indexed by Insulation.
var insulations = [insulationCount]insulationInfo{
	TW:    {"TW", T60},
	UF:    {"UF", T60},
	RHW:   {"RHW", T75},
	THHW:  {"THHW", T75},
	THW:   {"THW", T75},
	THWN:  {"THWN", T75},
	XHHW:  {"XHHW", T75},
	USE:   {"USE", T75},
	ZW:    {"ZW", T75},
	TBS:   {"TBS", T90},
	SA:    {"SA", T90},
	SIS:   {"SIS", T90},
	FEP:   {"FEP", T90},
	FEPB:  {"FEPB", T90},
	MI:    {"MI", T90},
	RHH:   {"RHH", T90},
	RHW2:  {"RHW-2", T90},
	THHN:  {"THHN", T90},
	THW2:  {"THW-2", T90},
	THWN2: {"THWN-2", T90},
	USE2:  {"USE-2", T90},
	XHH:   {"XHH", T90},
	XHHW2: {"XHHW-2", T90},
	ZW2:   {"ZW-2", T90},
}

// Insulations returns the whole catalog in declaration order.
func Insulations() []Insulation {
	out := make([]Insulation, insulationCount)
	for i := range insulationCount {
		out[i] = Insulation(i)
	}
	return out
}

func (i Insulation) valid() bool {
	return i >= TW && i <= ZW2
}

// Rating returns the temperature classification of the insulation, or
// TempRatingInvalid for codes outside the catalog.
func (i Insulation) Rating() TempRating {
	if !i.valid() {
		return TempRatingInvalid
	}
	return insulations[i].rating
}

// String returns the insulation code, e.g. "THWN-2".
func (i Insulation) String() string {
	if !i.valid() {
		return fmt.Sprintf("Insulation(%d)", int(i))
	}
	return insulations[i].name
}

// IsValidInsulationName reports whether name is a catalog code (case-insensitive).
func IsValidInsulationName(name string) bool {
	_, ok := ParseInsulation(name)
	return ok
}

// ParseInsulation looks an insulation code up by name. Codes are matched
// case-insensitively and "RHW2" is accepted for "RHW-2".
func ParseInsulation(name string) (Insulation, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, info := range insulations {
		if info.name == n || strings.ReplaceAll(info.name, "-", "") == n {
			return Insulation(i), true
		}
	}
	return InsulationInvalid, false
}

// TypicalInsulation returns the insulation assumed when a calculation is
// re-evaluated at a termination rating: TW for 60 °C, THW for 75 °C and THHN
// for 90 °C.
func TypicalInsulation(r TempRating) Insulation {
	switch r {
	case T60:
		return TW
	case T75:
		return THW
	case T90:
		return THHN
	default:
		return InsulationInvalid
	}
}

// MarshalText encodes the insulation code. Codes outside the catalog encode as "".
func (i Insulation) MarshalText() ([]byte, error) {
	if !i.valid() {
		return []byte{}, nil
	}
	return []byte(i.String()), nil
}

// UnmarshalText decodes an insulation code accepted by ParseInsulation.
func (i *Insulation) UnmarshalText(text []byte) error {
	parsed, ok := ParseInsulation(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInsulation, string(text))
	}
	*i = parsed
	return nil
}
