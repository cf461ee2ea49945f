package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureConversion(t *testing.T) {
	assert.Equal(t, 30, FahrenheitToCelsius(86))
	assert.Equal(t, 86, CelsiusToFahrenheit(30))
	assert.Equal(t, 0, FahrenheitToCelsius(32))
	assert.Equal(t, -18, FahrenheitToCelsius(0))
	assert.Equal(t, 104, CelsiusToFahrenheit(40))
	assert.Equal(t, 41, CelsiusToFahrenheit(5))
}

func TestTemperatureRoundTrip(t *testing.T) {
	for f := -40; f <= 200; f++ {
		back := CelsiusToFahrenheit(FahrenheitToCelsius(f))
		assert.LessOrEqual(t, math.Abs(float64(back-f)), 1.0, "F=%d came back as %d", f, back)
	}
	for c := -40; c <= 100; c++ {
		back := FahrenheitToCelsius(CelsiusToFahrenheit(c))
		assert.LessOrEqual(t, math.Abs(float64(back-c)), 1.0, "C=%d came back as %d", c, back)
	}
}

func TestNormalizeToFeet(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     string
		wantFeet float64
		errType  error
	}{
		{name: "feet identity", value: 100, unit: "ft", wantFeet: 100},
		{name: "inches", value: 24, unit: "in", wantFeet: 2},
		{name: "meters", value: 30, unit: "m", wantFeet: 98.4251968},
		{name: "case-insensitive", value: 10, unit: "FEET", wantFeet: 10},
		{name: "zero", value: 0, unit: "ft", wantFeet: 0},
		{name: "negative", value: -1, unit: "ft", errType: ErrNegativeValue},
		{name: "unknown unit", value: 1, unit: "yd", errType: ErrInvalidUnit},
		{name: "NaN", value: math.NaN(), unit: "ft", errType: ErrOverflow},
		{name: "Inf", value: math.Inf(1), unit: "ft", errType: ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToFeet(tt.value, tt.unit)
			if tt.errType != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errType)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantFeet, got, 1e-6)
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr error
	}{
		{in: "250", want: 250},
		{in: "100 ft", want: 100},
		{in: "30m", want: 98.4251968},
		{in: "18in", want: 1.5},
		{in: "12.5 ft", want: 12.5},
		{in: "abc", wantErr: ErrInvalidNumber},
		{in: "10 yd", wantErr: ErrInvalidUnit},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
	assert.True(t, IsRecognizedLengthUnit("metres"))
	assert.False(t, IsRecognizedLengthUnit("furlong"))
}
