// Package derating computes the ampacity correction and adjustment factors of
// NEC 310.15(B): ambient temperature correction, the adjustment for more than
// three current-carrying conductors, and the rooftop temperature adder.
package derating

import (
	"github.com/rshade/ampacity/internal/nec"
)

// CorrectionFactor returns the ambient temperature correction factor for a
// conductor of the given rating at ambientF degrees Fahrenheit.
//
// It returns 0 when the ambient temperature is above every band, or when the
// band has no entry for the rating: the conductor cannot be used there.
func CorrectionFactor(ambientF int, rating nec.TempRating) float64 {
	col, ok := rating.Column()
	if !ok {
		return 0
	}
	for _, band := range correctionBands {
		if ambientF <= band.maxF {
			return band.factors[col]
		}
	}
	return 0
}

// AdjustmentFactor returns the adjustment factor for ccc current-carrying
// conductors sharing a raceway, cable or bundle of the given length in inches.
// Runs of 24 in or less are not adjusted.
func AdjustmentFactor(ccc int, lengthIn float64) float64 {
	if lengthIn <= NippleLengthIn {
		return 1
	}
	for _, step := range adjustmentSteps {
		if ccc <= step.maxCCC {
			return step.factor
		}
	}
	return adjustmentFloor
}

// RooftopAdder returns the number of degrees Fahrenheit to add to the ambient
// temperature of a raceway or cable exposed to sunlight on or above a rooftop,
// given its distance above the roof in inches. Beyond 36 in it returns 0.
func RooftopAdder(distanceIn float64) int {
	for _, step := range rooftopSteps {
		if distanceIn <= step.maxIn {
			return step.adderF
		}
	}
	return 0
}

// CompoundFactor multiplies the correction and adjustment factors.
func CompoundFactor(correction, adjustment float64) float64 {
	return correction * adjustment
}
