// Package units converts temperatures and lengths into the units the property
// tables are expressed in: degrees Fahrenheit for ambient bands and feet for
// circuit length.
package units

import (
	"math"
	"strings"
)

// Length conversion factors to feet.
const (
	// FeetToFeet is the identity conversion.
	FeetToFeet = 1.0

	// InchesToFeet converts inches to feet.
	InchesToFeet = 1.0 / 12.0

	// MetersToFeet converts meters to feet.
	MetersToFeet = 3.280839895
)

// Temperature constants.
const (
	// NormalAmbientF is the ambient temperature the ampacity tables are based on.
	NormalAmbientF = 86

	// NormalAmbientC is NormalAmbientF in Celsius.
	NormalAmbientC = 30
)

// FahrenheitToCelsius converts an integral Fahrenheit temperature to Celsius,
// rounding down.
func FahrenheitToCelsius(f int) int {
	return int(math.Floor(float64(f-32) * 5 / 9))
}

// CelsiusToFahrenheit converts an integral Celsius temperature to Fahrenheit,
// rounding up. Combined with the floor in FahrenheitToCelsius, a round trip in
// either direction stays within one degree of the starting value.
func CelsiusToFahrenheit(c int) int {
	return int(math.Ceil(float64(c)*9/5 + 32))
}

// getLengthFactor returns the factor converting unit to feet.
func getLengthFactor(unit string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "ft", "feet", "foot", "'":
		return FeetToFeet, true
	case "in", "inch", "inches", "\"":
		return InchesToFeet, true
	case "m", "meter", "meters", "metre", "metres":
		return MetersToFeet, true
	default:
		return 0, false
	}
}

// NormalizeToFeet converts a length in the given unit to feet.
//
// Recognized units: ft, in, m (and their spelled-out forms), case-insensitive.
// Returns ErrNegativeValue for negative lengths, ErrInvalidUnit for unknown
// units and ErrOverflow for Inf/NaN input.
func NormalizeToFeet(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}
	factor, ok := getLengthFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return value * factor, nil
}

// IsRecognizedLengthUnit reports whether unit is accepted by NormalizeToFeet.
func IsRecognizedLengthUnit(unit string) bool {
	_, ok := getLengthFactor(unit)
	return ok
}

// ParseLength splits a length such as "30m", "100 ft" or "250" into its value
// and unit and converts it to feet. A bare number is taken as feet.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 && !isNumeric(s[i-1]) {
		i--
	}
	number, unit := strings.TrimSpace(s[:i]), strings.TrimSpace(s[i:])
	if unit == "" {
		unit = "ft"
	}
	value, err := parseFloat(number)
	if err != nil {
		return 0, err
	}
	return NormalizeToFeet(value, unit)
}

func isNumeric(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}
