package units

import "strconv"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for unit conversion.
var (
	// ErrInvalidUnit indicates an unrecognized unit.
	ErrInvalidUnit = constError("invalid unit")

	// ErrNegativeValue indicates a negative length.
	ErrNegativeValue = constError("negative value")

	// ErrOverflow indicates an Inf or NaN input.
	ErrOverflow = constError("value out of range")

	// ErrInvalidNumber indicates text that is not a number.
	ErrInvalidNumber = constError("invalid number")
)

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return v, nil
}
