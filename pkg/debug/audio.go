// Package debug provides audio-actor-safe diagnostics: an allocation-free
// Analyzer that accumulates peak/RMS/DC/clipping/NaN statistics over a
// buffer, for debug builds and tests to assert against. Analyze writes
// into a caller-supplied *AnalysisResult instead of returning one by
// value, so a build that wires this into a live Process call never
// allocates. This package has no formatting or printing helpers;
// printing results is left to main-actor code (for example through
// pkg/logging), never the audio path.
package debug

import "math"

// Analyzer holds the detection thresholds used by Analyze.
type Analyzer struct {
	ClippingThreshold float32
	DCThreshold       float32
	SilenceThreshold  float32
}

// NewAnalyzer returns an Analyzer with reasonable default thresholds.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		ClippingThreshold: 0.99,
		DCThreshold:       0.01,
		SilenceThreshold:  0.0001,
	}
}

// AnalysisResult summarizes one buffer's statistics.
type AnalysisResult struct {
	Peak           float32
	RMS            float32
	DC             float32
	Clipping       bool
	ClippedSamples int
	Silent         bool
	HasNaN         bool
	NaNCount       int
	ZeroCrossings  int
}

// Reset clears a result for reuse across calls, avoiding a fresh
// allocation per Process call for callers that keep one *AnalysisResult
// alive for the lifetime of an activation.
func (r *AnalysisResult) Reset() { *r = AnalysisResult{} }

// Analyze writes buf's statistics into out. out is never allocated by
// this function; callers own its lifetime.
func (a *Analyzer) Analyze(buf []float32, out *AnalysisResult) {
	out.Reset()
	if len(buf) == 0 {
		return
	}

	var sum, sumSquares float64
	var lastSample float32

	for i, sample := range buf {
		if math.IsNaN(float64(sample)) {
			out.HasNaN = true
			out.NaNCount++
			continue
		}

		abs := sample
		if abs < 0 {
			abs = -abs
		}
		if abs > out.Peak {
			out.Peak = abs
		}
		if abs >= a.ClippingThreshold {
			out.Clipping = true
			out.ClippedSamples++
		}

		sum += float64(sample)
		sumSquares += float64(sample) * float64(sample)

		if i > 0 && ((lastSample < 0 && sample >= 0) || (lastSample >= 0 && sample < 0)) {
			out.ZeroCrossings++
		}
		lastSample = sample
	}

	n := float64(len(buf))
	out.RMS = float32(math.Sqrt(sumSquares / n))
	out.DC = float32(sum / n)
	out.Silent = out.RMS < a.SilenceThreshold
}
