package param

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeDefaultsAndCacheLineSpacing(t *testing.T) {
	decls := []Declaration{
		Float("gain", "Gain").Range(-60, 24).Default(0).Build(),
		Bool("bypass", "Bypass").DefaultOn(true).Build(),
	}
	rt := NewRuntime(decls)
	require.Equal(t, 2, rt.Count())
	assert.InDelta(t, decls[0].DefaultNormalized(), rt.Normalized(0), 1e-6)
	assert.Equal(t, 1.0, rt.Normalized(1))

	if len(rt.slots) >= 2 {
		delta := uintptr(unsafe.Pointer(&rt.slots[1])) - uintptr(unsafe.Pointer(&rt.slots[0]))
		assert.GreaterOrEqual(t, delta, uintptr(cacheLineSize))
	}
}

func TestRuntimeSetNormalizedVisibleToReader(t *testing.T) {
	rt := NewRuntime([]Declaration{Float("gain", "Gain").Range(-60, 24).Build()})
	rt.SetNormalized(0, 0.5)
	assert.Equal(t, 0.5, rt.Normalized(0))
}

func TestRuntimeResetSmoothersSnapsToCurrent(t *testing.T) {
	rt := NewRuntime([]Declaration{Float("gain", "Gain").Range(0, 1).Smoothing(Linear).Build()})
	rt.SetNormalized(0, 1.0)
	rt.Smoother(0).SetTarget(1000, 10, 1.0)
	assert.True(t, rt.Smoother(0).IsSmoothing())

	rt.ResetSmoothers()
	assert.False(t, rt.Smoother(0).IsSmoothing())
	assert.Equal(t, 1.0, rt.Smoother(0).Current())
}
