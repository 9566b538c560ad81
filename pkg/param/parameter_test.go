package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNormalizeEndpoints(t *testing.T) {
	linear := Float("gain", "Gain").Range(-60, 24).Build()
	assert.Equal(t, 0.0, linear.Normalize(-60))
	assert.Equal(t, 1.0, linear.Normalize(24))

	log := Float("freq", "Frequency").LogRange(20, 20000).Build()
	assert.InDelta(t, 0.0, log.Normalize(20), 1e-9)
	assert.InDelta(t, 1.0, log.Normalize(20000), 1e-9)
}

func TestDegenerateRangeNeverDivides(t *testing.T) {
	flat := Float("x", "X").Range(5, 5).Build()
	assert.Equal(t, 0.0, flat.Normalize(5))
	assert.Equal(t, 5.0, flat.Unnormalize(0.7))
}

func TestChoiceAndBoolNormalize(t *testing.T) {
	b := Bool("b", "B").Build()
	assert.Equal(t, 0.0, b.Normalize(0))
	assert.Equal(t, 1.0, b.Normalize(1))

	c := ChoiceOf("c", "C", "a", "b", "c", "d").Build()
	assert.Equal(t, 2.0/3.0, c.Normalize(2))
	assert.Equal(t, 2, int(c.Unnormalize(2.0/3.0)))
}

func TestIDHashStable(t *testing.T) {
	d := Float("gain", "Gain").Build()
	require.Equal(t, uint32(0x1b5426fe), d.IDHash(), "FNV-1a/32 of \"gain\" must match the published test vector")
}

func TestStepCount(t *testing.T) {
	assert.Equal(t, 0, Float("x", "X").Build().StepCount())
	assert.Equal(t, 10, Int("x", "X").Range(0, 10).Build().StepCount())
	assert.Equal(t, 1, Bool("x", "X").Build().StepCount())
	assert.Equal(t, 3, ChoiceOf("x", "X", "a", "b", "c", "d").Build().StepCount())
}

// Property 1: unnormalize(normalize(x)) ~= x within tolerance, for every
// continuous parameter and every x in range.
func TestRoundTripLinear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		min := rapid.Float64Range(-1000, 1000).Draw(t, "min")
		span := rapid.Float64Range(0.001, 2000).Draw(t, "span")
		max := min + span
		d := Float("p", "P").Range(min, max).Build()
		x := rapid.Float64Range(min, max).Draw(t, "x")

		got := d.Unnormalize(d.Normalize(x))
		assert.InDelta(t, x, got, span*1e-6+1e-9)
	})
}

func TestRoundTripLog(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		min := rapid.Float64Range(0.001, 100).Draw(t, "min")
		ratio := rapid.Float64Range(1.01, 10000).Draw(t, "ratio")
		max := min * ratio
		d := Float("p", "P").LogRange(min, max).Build()
		x := rapid.Float64Range(min, max).Draw(t, "x")

		got := d.Unnormalize(d.Normalize(x))
		assert.InDelta(t, x, got, x*1e-3+1e-12)
	})
}

// Property 2: normalize is monotonic nondecreasing.
func TestNormalizeMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := Float("p", "P").Range(-10, 10).Build()
		a := rapid.Float64Range(-10, 10).Draw(t, "a")
		b := rapid.Float64Range(-10, 10).Draw(t, "b")
		if a > b {
			a, b = b, a
		}
		assert.LessOrEqual(t, d.Normalize(a), d.Normalize(b))
	})
}
