package raceway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ampacity/internal/nec"
)

func newHots(t *testing.T, n int) []*Conductor {
	t.Helper()
	out := make([]*Conductor, n)
	for i := range out {
		out[i] = NewConductor(nec.Default())
	}
	return out
}

func TestNewConductorDefaults(t *testing.T) {
	c := NewConductor(nec.Default())

	assert.Equal(t, nec.Size12, c.Size())
	assert.Equal(t, nec.Copper, c.Metal())
	assert.Equal(t, nec.THW, c.Insulation())
	assert.InDelta(t, 100.0, c.Length(), 1e-9)
	assert.Equal(t, 86, c.AmbientTemperatureF())
	assert.Equal(t, 30, c.AmbientTemperatureC())
	assert.Equal(t, RoleHot, c.Role())
	assert.Nil(t, c.Conduit())
	assert.Nil(t, c.Bundle())
	assert.Equal(t, 1, c.CurrentCarryingCount())
}

func TestConstructorsPanicOnNilProperties(t *testing.T) {
	assert.Panics(t, func() { NewConductor(nil) })
	assert.Panics(t, func() { NewCable(nil, AC120_1Ph2W) })
	assert.Panics(t, func() { NewConduit(nil) })
}

func TestConductorAmpacity(t *testing.T) {
	tests := []struct {
		name     string
		ambientF int
		ins      nec.Insulation
		want     float64
	}{
		{"75C at normal ambient", 86, nec.THW, 25},
		{"75C at 100F", 100, nec.THW, 25 * 0.88},
		{"90C at 100F", 100, nec.THHN, 30 * 0.91},
		{"60C at 140F is unusable", 140, nec.TW, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConductor(nec.Default())
			c.SetInsulation(tt.ins)
			c.SetAmbientTemperatureF(tt.ambientF)
			assert.InDelta(t, tt.want, c.Ampacity(), 1e-9)
		})
	}
}

func TestAmbientSettersKeepUnitsConsistent(t *testing.T) {
	c := NewConductor(nec.Default())

	c.SetAmbientTemperatureF(100)
	assert.Equal(t, 100, c.AmbientTemperatureF())
	assert.Equal(t, 37, c.AmbientTemperatureC())

	c.SetAmbientTemperatureC(40)
	assert.Equal(t, 40, c.AmbientTemperatureC())
	assert.Equal(t, 104, c.AmbientTemperatureF())
}

func TestConduitMembershipIsExclusive(t *testing.T) {
	props := nec.Default()
	c := NewConductor(props)
	first := NewConduit(props)
	second := NewConduit(props)
	bundle := NewBundle()

	first.Add(c)
	require.Same(t, first, c.Conduit())
	assert.Equal(t, 1, first.Len())

	second.Add(c)
	assert.Same(t, second, c.Conduit())
	assert.Nil(t, c.Bundle())
	assert.False(t, first.Contains(c))
	assert.True(t, second.Contains(c))

	bundle.Add(c)
	assert.Nil(t, c.Conduit())
	assert.Same(t, bundle, c.Bundle())
	assert.Equal(t, 0, second.Len())
	assert.Equal(t, 1, bundle.Len())

	bundle.Remove(c)
	assert.Nil(t, c.Bundle())
	assert.Equal(t, 0, bundle.Len())
}

func TestConduitAddIsIdempotent(t *testing.T) {
	props := nec.Default()
	conduit := NewConduit(props)
	hots := newHots(t, 2)
	conduit.Add(hots[0])
	conduit.Add(hots[1])
	conduit.Add(hots[0])

	members := conduit.Members()
	require.Len(t, members, 2)
	assert.Same(t, hots[0], members[0])
	assert.Same(t, hots[1], members[1])
}

func TestConduitRemoveIgnoresNonMembers(t *testing.T) {
	props := nec.Default()
	a := NewConduit(props)
	b := NewConduit(props)
	c := NewConductor(props)
	a.Add(c)

	b.Remove(c)
	assert.Same(t, a, c.Conduit())
}

func TestFirstMemberSetsConduitTemperature(t *testing.T) {
	props := nec.Default()
	conduit := NewConduit(props)
	hot := NewConductor(props)
	hot.SetAmbientTemperatureF(100)
	conduit.Add(hot)
	assert.Equal(t, 100, conduit.AmbientTemperatureF())

	late := NewConductor(props)
	late.SetAmbientTemperatureF(70)
	conduit.Add(late)
	assert.Equal(t, 100, late.AmbientTemperatureF())
	assert.Equal(t, 37, late.AmbientTemperatureC())
}

func TestExplicitConduitTemperatureWinsOverFirstMember(t *testing.T) {
	props := nec.Default()
	conduit := NewConduit(props)
	conduit.SetAmbientTemperatureF(110)

	hot := NewConductor(props)
	conduit.Add(hot)
	assert.Equal(t, 110, hot.AmbientTemperatureF())
}

func TestMemberTemperaturePropagatesToContainer(t *testing.T) {
	props := nec.Default()
	conduit := NewConduit(props)
	hots := newHots(t, 3)
	for _, h := range hots {
		conduit.Add(h)
	}
	cable := NewCable(props, AC120_1Ph2W)
	conduit.Add(cable)

	hots[1].SetAmbientTemperatureC(45)

	assert.Equal(t, 45, conduit.AmbientTemperatureC())
	for _, m := range conduit.Members() {
		assert.Equal(t, 45, m.AmbientTemperatureC())
		assert.Equal(t, 113, m.AmbientTemperatureF())
	}
}

func TestConduitAdjustment(t *testing.T) {
	tests := []struct {
		name   string
		hots   int
		nipple bool
		want   float64
	}{
		{"three", 3, false, 1},
		{"four", 4, false, 0.8},
		{"nine", 9, false, 0.7},
		{"ten", 10, false, 0.5},
		{"ten in nipple", 10, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conduit := NewConduit(nec.Default())
			conduit.SetNipple(tt.nipple)
			for _, h := range newHots(t, tt.hots) {
				conduit.Add(h)
			}
			assert.InDelta(t, tt.want, conduit.AdjustmentFactor(), 1e-9)
			for _, m := range conduit.Members() {
				assert.InDelta(t, tt.want, m.AdjustmentFactor(), 1e-9)
			}
		})
	}
}

func TestNonCurrentCarryingMembersDoNotCount(t *testing.T) {
	props := nec.Default()
	conduit := NewConduit(props)
	for _, h := range newHots(t, 3) {
		conduit.Add(h)
	}
	neutral := NewConductor(props)
	neutral.SetRole(RoleNeutral)
	ground := NewConductor(props)
	ground.SetRole(RoleGrounding)
	conduit.Add(neutral)
	conduit.Add(ground)

	assert.Equal(t, 3, conduit.CurrentCarryingCount())
	assert.InDelta(t, 1.0, conduit.AdjustmentFactor(), 1e-9)

	neutral.SetRole(RoleNeutralCCC)
	assert.Equal(t, 4, conduit.CurrentCarryingCount())
	assert.InDelta(t, 0.8, conduit.AdjustmentFactor(), 1e-9)
}

func TestRooftopAdder(t *testing.T) {
	props := nec.Default()

	t.Run("on conduit", func(t *testing.T) {
		conduit := NewConduit(props)
		c := NewConductor(props)
		conduit.Add(c)
		conduit.SetRooftopDistance(2)
		// 86 + 40 = 126 F, 75 C column.
		assert.InDelta(t, 0.67, c.CorrectionFactor(), 1e-9)
	})

	t.Run("conductor setting ignored inside conduit", func(t *testing.T) {
		conduit := NewConduit(props)
		c := NewConductor(props)
		c.SetRooftopDistance(2)
		conduit.Add(c)
		assert.InDelta(t, 1.0, c.CorrectionFactor(), 1e-9)
	})

	t.Run("on free conductor", func(t *testing.T) {
		c := NewConductor(props)
		c.SetRooftopDistance(0.5)
		// 86 + 60 = 146 F.
		assert.InDelta(t, 0.47, c.CorrectionFactor(), 1e-9)
		c.ClearRooftopDistance()
		assert.InDelta(t, 1.0, c.CorrectionFactor(), 1e-9)
	})
}

func TestCompoundFactorAtRestoresInsulation(t *testing.T) {
	props := nec.Default()
	conduit := NewConduit(props)
	for _, h := range newHots(t, 4) {
		conduit.Add(h)
	}
	conduit.SetAmbientTemperatureF(100)
	c := conduit.Members()[0]
	c.SetInsulation(nec.THHN)

	assert.InDelta(t, 0.88*0.8, c.CompoundFactorAt(nec.T75), 1e-9)
	assert.InDelta(t, 0.82*0.8, c.CompoundFactorAt(nec.T60), 1e-9)
	assert.Equal(t, nec.THHN, c.Insulation())
	assert.InDelta(t, 0.91*0.8, c.CompoundFactor(), 1e-9)
}

func TestConduitFill(t *testing.T) {
	props := nec.Default()

	t.Run("three conductors", func(t *testing.T) {
		conduit := NewConduit(props)
		for _, h := range newHots(t, 3) {
			conduit.Add(h)
		}
		assert.InDelta(t, 3*0.0243, conduit.FillArea(), 1e-9)
		assert.InDelta(t, FillOverTwoPercent, conduit.AllowedFillPercent(), 1e-9)
		assert.InDelta(t, 100*3*0.0243/0.285, conduit.FillPercent(nec.Trade1_2), 1e-9)

		ts, ok := conduit.MinTradeSize()
		require.True(t, ok)
		assert.Equal(t, nec.Trade1_2, ts)
	})

	t.Run("ten conductors", func(t *testing.T) {
		conduit := NewConduit(props)
		for _, h := range newHots(t, 10) {
			conduit.Add(h)
		}
		ts, ok := conduit.MinTradeSize()
		require.True(t, ok)
		assert.Equal(t, nec.Trade1, ts)
	})

	t.Run("member count sets allowed fill", func(t *testing.T) {
		conduit := NewConduit(props)
		hots := newHots(t, 2)
		conduit.Add(hots[0])
		assert.InDelta(t, FillOneMemberPercent, conduit.AllowedFillPercent(), 1e-9)
		conduit.Add(hots[1])
		assert.InDelta(t, FillTwoMembersPercent, conduit.AllowedFillPercent(), 1e-9)
		conduit.SetNipple(true)
		assert.InDelta(t, FillNipplePercent, conduit.AllowedFillPercent(), 1e-9)
	})

	t.Run("cable counts by outer diameter", func(t *testing.T) {
		conduit := NewConduit(props)
		cable := NewCable(props, AC120_240_1Ph3W)
		cable.SetOuterDiameter(1)
		conduit.Add(cable)
		assert.InDelta(t, 0.785398, conduit.FillArea(), 1e-6)
	})

	t.Run("nothing fits", func(t *testing.T) {
		conduit := NewConduit(props)
		cable := NewCable(props, AC120_240_1Ph3W)
		cable.SetOuterDiameter(10)
		conduit.Add(cable)
		ts, ok := conduit.MinTradeSize()
		assert.False(t, ok)
		assert.Equal(t, nec.TradeSizeInvalid, ts)
	})
}

func TestSnap(t *testing.T) {
	props := nec.Default()
	conduit := NewConduit(props)
	conduit.SetMaterial(nec.SteelConduit)
	for _, h := range newHots(t, 4) {
		conduit.Add(h)
	}
	conduit.SetAmbientTemperatureF(100)
	c := conduit.Members()[0]
	c.SetLength(150)

	s := Snap(c)
	assert.Equal(t, nec.Size12, s.Size)
	assert.Equal(t, nec.SteelConduit, s.Material)
	assert.InDelta(t, 150.0, s.LengthFt, 1e-9)
	assert.Equal(t, 1, s.CurrentCarrying)
	assert.InDelta(t, 0.88, s.Correction, 1e-9)
	assert.InDelta(t, 0.8, s.Adjustment, 1e-9)
	assert.InDelta(t, 0.88*0.8, s.Compound(), 1e-9)
	assert.InDelta(t, c.Ampacity(), s.Ampacity, 1e-9)

	free := NewConductor(props)
	assert.Equal(t, nec.PVC, Snap(free).Material)
}
