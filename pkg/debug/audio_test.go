package debug

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeDetectsClipping(t *testing.T) {
	a := NewAnalyzer()
	var out AnalysisResult
	a.Analyze([]float32{0.1, 1.0, -1.0, 0.2}, &out)
	assert.True(t, out.Clipping)
	assert.Equal(t, 2, out.ClippedSamples)
}

func TestAnalyzeDetectsSilence(t *testing.T) {
	a := NewAnalyzer()
	var out AnalysisResult
	a.Analyze(make([]float32, 16), &out)
	assert.True(t, out.Silent)
}

func TestAnalyzeDetectsNaN(t *testing.T) {
	a := NewAnalyzer()
	var out AnalysisResult
	nan := float32(math.NaN())
	a.Analyze([]float32{0, nan, 0.5}, &out)
	assert.True(t, out.HasNaN)
	assert.Equal(t, 1, out.NaNCount)
}

func TestAnalyzeEmptyBufferIsZeroValue(t *testing.T) {
	a := NewAnalyzer()
	out := AnalysisResult{Peak: 1} // dirty from a prior call
	a.Analyze(nil, &out)
	assert.Equal(t, AnalysisResult{}, out)
}
