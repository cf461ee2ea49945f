package nec

import "sync"

// Properties answers the keyed property queries needed by the derating and
// voltage-drop calculations. Every method returns 0 for an invalid or
// untabulated key.
type Properties interface {
	// Ampacity returns the allowable ampacity in amperes.
	Ampacity(s Size, m Metal, r TempRating) float64

	// ACResistance returns the AC resistance in ohms per 1000 ft.
	ACResistance(s Size, m Metal, c ConduitMaterial) float64

	// DCResistance returns the DC resistance in ohms per 1000 ft. The coated
	// flag selects the coated-copper column and is ignored for aluminum.
	DCResistance(s Size, m Metal, coated bool) float64

	// Reactance returns the inductive reactance in ohms per 1000 ft.
	Reactance(s Size, magnetic bool) float64

	// InsulatedArea returns the cross-section of an insulated conductor in in².
	InsulatedArea(s Size, i Insulation) float64

	// ConduitArea returns the total internal area of a conduit in in².
	ConduitArea(t TradeSize, c ConduitMaterial) float64
}

// Table is an immutable Properties implementation backed by Data.
type Table struct {
	data Data
}

var _ Properties = (*Table)(nil)

//nolint:gochecknoglobals // The NEC tables are built once and shared read-only.
var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the shared table populated with the NEC data.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(necData())
	})
	return defaultTable
}

// NewTable returns a table over d. The table keeps its own copy of the area map,
// so later changes to d do not affect it.
func NewTable(d Data) *Table {
	areas := make(map[AreaGroup][sizeCount]float64, len(d.InsulatedArea))
	for k, v := range d.InsulatedArea {
		areas[k] = v
	}
	d.InsulatedArea = areas
	return &Table{data: d}
}

func validMetal(m Metal) bool { return m == Copper || m == Aluminum }

func validMaterial(c ConduitMaterial) bool { return c >= PVC && c <= SteelConduit }

// Ampacity implements Properties.
func (t *Table) Ampacity(s Size, m Metal, r TempRating) float64 {
	col, ok := r.Column()
	if !ok || !IsValidSize(s) || !validMetal(m) {
		return 0
	}
	return t.data.Ampacity[m][s][col]
}

// ACResistance implements Properties.
func (t *Table) ACResistance(s Size, m Metal, c ConduitMaterial) float64 {
	if !IsValidSize(s) || !validMetal(m) || !validMaterial(c) {
		return 0
	}
	return t.data.ACResistance[m][s][c]
}

// DCResistance implements Properties.
func (t *Table) DCResistance(s Size, m Metal, coated bool) float64 {
	if !IsValidSize(s) || !validMetal(m) {
		return 0
	}
	switch {
	case m == Aluminum:
		return t.data.DCResistance[s][2]
	case coated:
		return t.data.DCResistance[s][1]
	default:
		return t.data.DCResistance[s][0]
	}
}

// Reactance implements Properties.
func (t *Table) Reactance(s Size, magnetic bool) float64 {
	if !IsValidSize(s) {
		return 0
	}
	if magnetic {
		return t.data.Reactance[s][1]
	}
	return t.data.Reactance[s][0]
}

// InsulatedArea implements Properties.
func (t *Table) InsulatedArea(s Size, i Insulation) float64 {
	if !IsValidSize(s) {
		return 0
	}
	rows, ok := t.data.InsulatedArea[areaGroupOf(i)]
	if !ok {
		return 0
	}
	return rows[s]
}

// ConduitArea implements Properties.
func (t *Table) ConduitArea(ts TradeSize, c ConduitMaterial) float64 {
	if ts < Trade1_2 || ts > Trade6 || !validMaterial(c) {
		return 0
	}
	return t.data.ConduitArea[c][ts]
}
