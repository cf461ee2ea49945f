package raceway

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/ampacity/internal/nec"
)

// bundleWith returns a bundle of one MC cable (two current-carrying
// conductors) plus hots single 12 AWG copper conductors.
func bundleWith(t *testing.T, hots int, lengthIn float64) (*Bundle, *Cable) {
	t.Helper()
	props := nec.Default()
	b := NewBundle()
	b.SetBundlingLength(lengthIn)
	cable := NewCable(props, AC120_240_1Ph3W)
	b.Add(cable)
	for _, h := range newHots(t, hots) {
		b.Add(h)
	}
	return b, cable
}

func TestBundleExceptionBoundary(t *testing.T) {
	b, _ := bundleWith(t, 19, 25)
	assert.Equal(t, 21, b.CurrentCarryingCount())
	assert.False(t, b.QualifiesForNoAdjustment())
	assert.True(t, b.QualifiesForSixtyPercent())
	assert.InDelta(t, 0.6, b.AdjustmentFactor(), 1e-9)

	b, _ = bundleWith(t, 18, 25)
	assert.Equal(t, 20, b.CurrentCarryingCount())
	assert.True(t, b.QualifiesForNoAdjustment())
	assert.False(t, b.QualifiesForSixtyPercent())
	assert.InDelta(t, 1.0, b.AdjustmentFactor(), 1e-9)
}

func TestBundleExceptionsNeedCompliantCables(t *testing.T) {
	t.Run("jacketed cable", func(t *testing.T) {
		b, cable := bundleWith(t, 19, 25)
		cable.SetJacketed(true)
		assert.False(t, b.QualifiesForSixtyPercent())
		assert.InDelta(t, 0.45, b.AdjustmentFactor(), 1e-9)
	})

	t.Run("NM cable", func(t *testing.T) {
		b, cable := bundleWith(t, 8, 25)
		cable.SetType(CableNM)
		assert.False(t, b.QualifiesForNoAdjustment())
		assert.InDelta(t, 0.5, b.AdjustmentFactor(), 1e-9)
	})

	t.Run("cable over three ccc", func(t *testing.T) {
		b, cable := bundleWith(t, 2, 25)
		cable.SetVoltageSystem(AC208_120_3Ph4W)
		cable.SetNonlinearLoad(true)
		assert.Equal(t, 6, b.CurrentCarryingCount())
		assert.False(t, b.QualifiesForNoAdjustment())
		assert.InDelta(t, 0.8, b.AdjustmentFactor(), 1e-9)
	})

	t.Run("cable not 12 AWG", func(t *testing.T) {
		b, cable := bundleWith(t, 2, 25)
		cable.SetSize(nec.Size10)
		assert.False(t, b.QualifiesForNoAdjustment())
	})

	t.Run("aluminum single conductor", func(t *testing.T) {
		b, _ := bundleWith(t, 2, 25)
		b.Members()[1].SetMetal(nec.Aluminum)
		assert.False(t, b.QualifiesForNoAdjustment())
	})

	t.Run("no cables", func(t *testing.T) {
		b := NewBundle()
		b.SetBundlingLength(25)
		for _, h := range newHots(t, 21) {
			b.Add(h)
		}
		assert.False(t, b.QualifiesForNoAdjustment())
		assert.False(t, b.QualifiesForSixtyPercent())
		assert.InDelta(t, 0.45, b.AdjustmentFactor(), 1e-9)
	})
}

func TestShortBundleIsNotAdjusted(t *testing.T) {
	b := NewBundle()
	for _, h := range newHots(t, 10) {
		b.Add(h)
	}
	assert.InDelta(t, 1.0, b.AdjustmentFactor(), 1e-9)

	b.SetBundlingLength(24)
	assert.InDelta(t, 1.0, b.AdjustmentFactor(), 1e-9)

	b.SetBundlingLength(24.5)
	assert.InDelta(t, 0.5, b.AdjustmentFactor(), 1e-9)
	assert.InDelta(t, 0.5*25, b.Members()[0].Ampacity(), 1e-9)
}

func TestBundleSharesTemperature(t *testing.T) {
	b, cable := bundleWith(t, 2, 30)
	b.SetAmbientTemperatureC(40)
	assert.Equal(t, 104, cable.AmbientTemperatureF())
	for _, m := range b.Members() {
		assert.Equal(t, 40, m.AmbientTemperatureC())
	}
}

func TestConcurrentMoves(t *testing.T) {
	props := nec.Default()
	conduit := NewConduit(props)
	bundle := NewBundle()
	hots := newHots(t, 50)

	var wg sync.WaitGroup
	for i, h := range hots {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				conduit.Add(h)
				bundle.Add(h)
			} else {
				bundle.Add(h)
				conduit.Add(h)
			}
			h.SetAmbientTemperatureF(90 + i)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, conduit.Len()+bundle.Len())
	for _, h := range hots {
		inConduit := h.Conduit() != nil
		inBundle := h.Bundle() != nil
		assert.NotEqual(t, inConduit, inBundle)
	}
	for _, m := range conduit.Members() {
		assert.Equal(t, conduit.AmbientTemperatureF(), m.AmbientTemperatureF())
	}
	for _, m := range bundle.Members() {
		assert.Equal(t, bundle.AmbientTemperatureF(), m.AmbientTemperatureF())
	}
}
