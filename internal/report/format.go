package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float rounded half away from zero to precision digits,
// with thousand separators. A negative precision is treated as 0.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	places := int32(precision) //nolint:gosec // Precision is a small display setting.
	d := decimal.NewFromFloat(f).Round(places)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	intPart := printer.Sprintf("%d", d.IntPart())
	if precision == 0 {
		return sign + intPart
	}

	fixed := d.StringFixed(places)
	_, frac, _ := strings.Cut(fixed, ".")
	return sign + intPart + "." + frac
}

// FormatPercent formats a percentage with a trailing "%".
// Example: FormatPercent(3.33329, 2) returns "3.33%".
func FormatPercent(f float64, precision int) string {
	return FormatFloat(f, precision) + "%"
}

// FormatFactor formats a derating factor to three decimals.
func FormatFactor(f float64) string {
	return FormatFloat(f, factorPrecision)
}
