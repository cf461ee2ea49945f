package derating

// NEC 310.15(B)(3)(a) constants.
const (
	// NippleLengthIn is the longest raceway or bundle, in inches, to which the
	// adjustment factors do not apply.
	NippleLengthIn = 24.0

	// BundleSixtyPercentFactor is the adjustment factor of 310.15(B)(3)(a)(5) for
	// unjacketed AC/MC cable bundles of more than 20 current-carrying conductors.
	BundleSixtyPercentFactor = 0.6

	// BundleMaxCCCWithoutAdjustment is the largest current-carrying count for which
	// 310.15(B)(3)(a)(4) waives adjustment of unjacketed AC/MC cables.
	BundleMaxCCCWithoutAdjustment = 20

	// CableMaxCCCWithoutAdjustment is the most current-carrying conductors a single
	// AC/MC cable may have under 310.15(B)(3)(a)(4).
	CableMaxCCCWithoutAdjustment = 3
)

// correctionBand is one row of NEC Table 310.15(B)(2)(a), keyed by the highest
// ambient temperature (°F) the row covers. A zero factor means the conductor
// may not be used at that temperature.
type correctionBand struct {
	maxF    int
	factors [3]float64 // 60, 75 and 90 °C columns
}

//nolint:gochecknoglobals,mnd // Regulatory table.
var correctionBands = [...]correctionBand{
	{50, [3]float64{1.29, 1.20, 1.15}},
	{59, [3]float64{1.22, 1.15, 1.12}},
	{68, [3]float64{1.15, 1.11, 1.08}},
	{77, [3]float64{1.08, 1.05, 1.04}},
	{86, [3]float64{1.00, 1.00, 1.00}},
	{95, [3]float64{0.91, 0.94, 0.96}},
	{104, [3]float64{0.82, 0.88, 0.91}},
	{113, [3]float64{0.71, 0.82, 0.87}},
	{122, [3]float64{0.58, 0.75, 0.82}},
	{131, [3]float64{0.41, 0.67, 0.76}},
	{140, [3]float64{0, 0.58, 0.71}},
	{149, [3]float64{0, 0.47, 0.65}},
	{158, [3]float64{0, 0.33, 0.58}},
	{167, [3]float64{0, 0, 0.50}},
	{176, [3]float64{0, 0, 0.41}},
	{185, [3]float64{0, 0, 0.29}},
}

// adjustmentStep is one row of NEC Table 310.15(B)(3)(a), keyed by the highest
// current-carrying count the row covers.
type adjustmentStep struct {
	maxCCC int
	factor float64
}

//nolint:gochecknoglobals,mnd // Regulatory table.
var adjustmentSteps = [...]adjustmentStep{
	{3, 1.0},
	{6, 0.8},
	{9, 0.7},
	{20, 0.5},
	{30, 0.45},
	{40, 0.4},
}

// adjustmentFloor applies to 41 or more current-carrying conductors.
const adjustmentFloor = 0.35

// rooftopStep is one row of NEC Table 310.15(B)(3)(c), keyed by the largest
// distance above the roof (inches) the row covers.
type rooftopStep struct {
	maxIn  float64
	adderF int
}

//nolint:gochecknoglobals,mnd // Regulatory table.
var rooftopSteps = [...]rooftopStep{
	{0.5, 60},
	{3.5, 40},
	{12, 30},
	{36, 25},
}
