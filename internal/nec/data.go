package nec

// Data holds the raw tables behind a Table. Rows are indexed by Size (or
// TradeSize), so the row order must follow the declaration order of those types.
// A zero entry means "not tabulated".
type Data struct {
	// Ampacity is indexed by [Metal][Size][rating column], where the rating
	// columns are 60, 75 and 90 °C. NEC Table 310.15(B)(16), amperes.
	Ampacity [2][sizeCount][3]float64

	// ACResistance is indexed by [Metal][Size][ConduitMaterial].
	// NEC Chapter 9 Table 9, ohms per 1000 ft at 75 °C.
	ACResistance [2][sizeCount][3]float64

	// DCResistance is indexed by [Size][column], where the columns are uncoated
	// copper, coated copper and aluminum. NEC Chapter 9 Table 8, ohms per 1000 ft.
	DCResistance [sizeCount][3]float64

	// Reactance is indexed by [Size][column], where the columns are PVC/aluminum
	// conduit and steel conduit. NEC Chapter 9 Table 9, ohms per 1000 ft.
	Reactance [sizeCount][2]float64

	// InsulatedArea is indexed by area group and Size. NEC Chapter 9 Table 5, in².
	InsulatedArea map[AreaGroup][sizeCount]float64

	// ConduitArea is indexed by [ConduitMaterial][TradeSize]: PVC Schedule 40,
	// RMC for aluminum and EMT for steel. NEC Chapter 9 Table 4, total area in².
	ConduitArea [3][tradeSizeCount]float64
}

// AreaGroup groups insulation codes that share one row set in the insulated
// dimensions table.
type AreaGroup int

// Insulated area groups.
const (
	AreaNone AreaGroup = iota
	AreaTW
	AreaTHW
	AreaTHHN
	AreaXHHW
	AreaRHH
)

// areaGroupOf maps an insulation code to its dimension group.
func areaGroupOf(i Insulation) AreaGroup {
	switch i {
	case TW:
		return AreaTW
	case THW, THHW, THW2:
		return AreaTHW
	case THHN, THWN, THWN2:
		return AreaTHHN
	case XHHW, XHHW2, XHH, ZW, ZW2:
		return AreaXHHW
	case RHH, RHW, RHW2, USE, USE2, SA, SIS:
		return AreaRHH
	default:
		return AreaNone
	}
}

// necData returns the NEC 2014 tables.
//
//nolint:funlen,mnd // Tabulated data.
func necData() Data {
	return Data{
		Ampacity: [2][sizeCount][3]float64{
			Copper: {
				{15, 20, 25}, {20, 25, 30}, {30, 35, 40}, {40, 50, 55}, {55, 65, 75},
				{70, 85, 95}, {85, 100, 115}, {95, 115, 130}, {110, 130, 145},
				{125, 150, 170}, {145, 175, 195}, {165, 200, 225}, {195, 230, 260},
				{215, 255, 290}, {240, 285, 320}, {260, 310, 350}, {280, 335, 380},
				{320, 380, 430}, {350, 420, 475}, {385, 460, 520}, {400, 475, 535},
				{410, 490, 555}, {435, 520, 585}, {455, 545, 615}, {495, 590, 665},
				{525, 625, 705}, {545, 650, 735}, {555, 665, 750},
			},
			Aluminum: {
				{0, 0, 0}, {15, 20, 25}, {25, 30, 35}, {35, 40, 45}, {40, 50, 55},
				{55, 65, 75}, {65, 75, 85}, {75, 90, 100}, {85, 100, 115},
				{100, 120, 135}, {115, 135, 150}, {130, 155, 175}, {150, 180, 205},
				{170, 205, 230}, {195, 230, 260}, {210, 250, 280}, {225, 270, 305},
				{260, 310, 350}, {285, 340, 385}, {310, 375, 425}, {320, 385, 435},
				{330, 395, 445}, {355, 425, 480}, {375, 445, 500}, {405, 485, 545},
				{435, 520, 585}, {455, 545, 615}, {470, 560, 630},
			},
		},
		ACResistance: [2][sizeCount][3]float64{
			Copper: {
				{3.1, 3.1, 3.1}, {2.0, 2.0, 2.0}, {1.2, 1.2, 1.2}, {0.78, 0.78, 0.78},
				{0.49, 0.49, 0.49}, {0.31, 0.31, 0.31}, {0.25, 0.25, 0.25},
				{0.19, 0.20, 0.20}, {0.15, 0.16, 0.16}, {0.12, 0.13, 0.12},
				{0.10, 0.10, 0.10}, {0.077, 0.082, 0.079}, {0.062, 0.067, 0.063},
				{0.052, 0.057, 0.054}, {0.044, 0.049, 0.045}, {0.038, 0.043, 0.039},
				{0.033, 0.038, 0.035}, {0.027, 0.032, 0.029}, {0.023, 0.028, 0.025},
				{}, {0.019, 0.024, 0.021}, {}, {}, {0.015, 0.019, 0.018},
				{}, {}, {}, {},
			},
			Aluminum: {
				{}, {3.2, 3.2, 3.2}, {2.0, 2.0, 2.0}, {1.3, 1.3, 1.3},
				{0.81, 0.81, 0.81}, {0.51, 0.51, 0.51}, {0.40, 0.41, 0.40},
				{0.32, 0.32, 0.32}, {0.25, 0.26, 0.25}, {0.20, 0.21, 0.20},
				{0.16, 0.16, 0.16}, {0.13, 0.13, 0.13}, {0.10, 0.11, 0.10},
				{0.085, 0.090, 0.086}, {0.071, 0.076, 0.072}, {0.061, 0.066, 0.063},
				{0.054, 0.059, 0.055}, {0.043, 0.048, 0.045}, {0.036, 0.041, 0.038},
				{}, {0.029, 0.034, 0.031}, {}, {}, {0.023, 0.027, 0.025},
				{}, {}, {}, {},
			},
		},
		DCResistance: [sizeCount][3]float64{
			{3.07, 3.19, 5.06}, {1.93, 2.01, 3.18}, {1.21, 1.26, 2.00},
			{0.764, 0.786, 1.26}, {0.491, 0.510, 0.808}, {0.308, 0.321, 0.508},
			{0.245, 0.254, 0.403}, {0.194, 0.201, 0.319}, {0.154, 0.160, 0.253},
			{0.122, 0.127, 0.201}, {0.0967, 0.101, 0.159}, {0.0766, 0.0797, 0.126},
			{0.0608, 0.0626, 0.100}, {0.0515, 0.0535, 0.0847}, {0.0429, 0.0446, 0.0707},
			{0.0367, 0.0382, 0.0605}, {0.0321, 0.0331, 0.0529}, {0.0258, 0.0265, 0.0424},
			{0.0214, 0.0223, 0.0353}, {0.0184, 0.0189, 0.0303}, {0.0171, 0.0176, 0.0282},
			{0.0161, 0.0166, 0.0265}, {0.0143, 0.0147, 0.0235}, {0.0129, 0.0132, 0.0212},
			{0.0103, 0.0106, 0.0169}, {0.00858, 0.00883, 0.0141},
			{0.00735, 0.00756, 0.0121}, {0.00643, 0.00662, 0.0106},
		},
		Reactance: [sizeCount][2]float64{
			{0.058, 0.073}, {0.054, 0.068}, {0.050, 0.063}, {0.052, 0.065},
			{0.051, 0.064}, {0.048, 0.060}, {0.047, 0.059}, {0.045, 0.057},
			{0.046, 0.057}, {0.044, 0.055}, {0.043, 0.054}, {0.042, 0.052},
			{0.041, 0.051}, {0.041, 0.052}, {0.041, 0.051}, {0.040, 0.050},
			{0.040, 0.049}, {0.039, 0.048}, {0.039, 0.048}, {}, {0.038, 0.048},
			{}, {}, {0.037, 0.046}, {}, {}, {}, {},
		},
		InsulatedArea: map[AreaGroup][sizeCount]float64{
			AreaTW: {
				0.0139, 0.0181, 0.0243, 0.0437, 0.0726, 0.0973, 0.1134, 0.1333,
				0.1901, 0.2223, 0.2624, 0.3117, 0.3718, 0.4596, 0.5281, 0.5958,
				0.6619, 0.7901, 0.9729, 1.1010, 1.1652, 1.2272, 1.3561, 1.4784,
				1.8602, 2.1695, 2.4773, 2.7818,
			},
			AreaTHW: {
				0.0181, 0.0243, 0.0333, 0.0437, 0.0726, 0.0973, 0.1134, 0.1333,
				0.1901, 0.2223, 0.2624, 0.3117, 0.3718, 0.4596, 0.5281, 0.5958,
				0.6619, 0.7901, 0.9729, 1.1010, 1.1652, 1.2272, 1.3561, 1.4784,
				1.8602, 2.1695, 2.4773, 2.7818,
			},
			AreaTHHN: {
				0.0097, 0.0133, 0.0211, 0.0366, 0.0507, 0.0824, 0.0973, 0.1158,
				0.1562, 0.1855, 0.2223, 0.2679, 0.3237, 0.3970, 0.4608, 0.5242,
				0.5863, 0.7073, 0.8676, 0.9887, 1.0496, 1.1085, 1.2311, 1.3478,
				0, 0, 0, 0,
			},
			AreaXHHW: {
				0.0139, 0.0181, 0.0243, 0.0437, 0.0590, 0.0814, 0.0962, 0.1146,
				0.1534, 0.1825, 0.2190, 0.2642, 0.3197, 0.3904, 0.4536, 0.5166,
				0.5782, 0.6984, 0.8709, 0.9923, 1.0532, 1.1122, 1.2351, 1.3519,
				1.7180, 2.0157, 2.3127, 2.6073,
			},
			AreaRHH: {
				0.0293, 0.0353, 0.0437, 0.0835, 0.1041, 0.1333, 0.1521, 0.1750,
				0.2660, 0.3039, 0.3505, 0.4072, 0.4754, 0.6291, 0.7088, 0.7870,
				0.8626, 1.0082, 1.2135, 1.3561, 1.4272, 1.4957, 1.6377, 1.7719,
				2.3479, 2.6938, 3.0357, 3.3719,
			},
		},
		ConduitArea: [3][tradeSizeCount]float64{
			PVC: {
				0.285, 0.508, 0.832, 1.453, 1.986, 3.291, 4.695, 7.268, 9.737, 12.554,
				19.761, 28.567,
			},
			AluminumConduit: {
				0.314, 0.549, 0.887, 1.526, 2.071, 3.408, 4.866, 7.499, 10.010, 12.882,
				20.212, 29.158,
			},
			SteelConduit: {
				0.304, 0.533, 0.864, 1.496, 2.036, 3.356, 5.858, 8.846, 11.545, 14.753,
				0, 0,
			},
		},
	}
}
