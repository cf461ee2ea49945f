package derating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/ampacity/internal/nec"
)

func TestCorrectionFactor(t *testing.T) {
	tests := []struct {
		name     string
		ambientF int
		rating   nec.TempRating
		want     float64
	}{
		{"cold 60C", 5, nec.T60, 1.29},
		{"band edge 50", 50, nec.T90, 1.15},
		{"band start 51", 51, nec.T75, 1.15},
		{"normal ambient", 86, nec.T75, 1.00},
		{"87F 75C", 87, nec.T75, 0.94},
		{"104F 90C", 104, nec.T90, 0.91},
		{"122F 60C", 122, nec.T60, 0.58},
		{"135F 60C not allowed", 135, nec.T60, 0},
		{"135F 75C", 135, nec.T75, 0.58},
		{"160F 75C not allowed", 160, nec.T75, 0},
		{"185F 90C", 185, nec.T90, 0.29},
		{"above every band", 186, nec.T90, 0},
		{"invalid rating", 86, nec.TempRating(105), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CorrectionFactor(tt.ambientF, tt.rating), 1e-9)
		})
	}
}

func TestCorrectionFactor_MonotonicInAmbient(t *testing.T) {
	for _, r := range []nec.TempRating{nec.T60, nec.T75, nec.T90} {
		prev := CorrectionFactor(-20, r)
		for f := -19; f <= 200; f++ {
			got := CorrectionFactor(f, r)
			assert.LessOrEqual(t, got, prev, "rating %s at %d°F", r, f)
			prev = got
		}
	}
}

func TestCorrectionFactor_SixteenBands(t *testing.T) {
	assert.Len(t, correctionBands, 16)
	assert.Equal(t, 185, correctionBands[len(correctionBands)-1].maxF)
}

func TestAdjustmentFactor(t *testing.T) {
	tests := []struct {
		ccc      int
		lengthIn float64
		want     float64
	}{
		{0, 100, 1},
		{3, 100, 1},
		{4, 100, 0.8},
		{6, 100, 0.8},
		{7, 100, 0.7},
		{9, 100, 0.7},
		{10, 100, 0.5},
		{20, 100, 0.5},
		{21, 100, 0.45},
		{30, 100, 0.45},
		{31, 100, 0.4},
		{40, 100, 0.4},
		{41, 100, 0.35},
		{200, 100, 0.35},
		{40, 24, 1},
		{40, 24.01, 0.4},
		{12, 0, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, AdjustmentFactor(tt.ccc, tt.lengthIn), 1e-9,
			"ccc=%d length=%v", tt.ccc, tt.lengthIn)
	}
}

func TestAdjustmentFactor_MonotonicInCount(t *testing.T) {
	prev := AdjustmentFactor(0, 100)
	for n := 1; n <= 60; n++ {
		got := AdjustmentFactor(n, 100)
		assert.LessOrEqual(t, got, prev, "ccc=%d", n)
		prev = got
	}
}

func TestRooftopAdder(t *testing.T) {
	tests := []struct {
		distance float64
		want     int
	}{
		{0, 60},
		{0.5, 60},
		{0.51, 40},
		{3.5, 40},
		{3.6, 30},
		{12, 30},
		{12.5, 25},
		{36, 25},
		{36.1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RooftopAdder(tt.distance), "distance=%v", tt.distance)
	}
}

func TestCompoundFactor(t *testing.T) {
	assert.InDelta(t, 0.752, CompoundFactor(0.94, 0.8), 1e-9)
}
