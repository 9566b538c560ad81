package param

import "math"

// Style selects the per-sample approach trajectory a Smoother follows
// toward a new target.
type Style int

const (
	// NoSmoothing snaps to the target immediately.
	NoSmoothing Style = iota
	// Linear advances by a constant step each sample.
	Linear
	// Exponential advances by a single-pole IIR step (loop-carried,
	// evaluated scalar-only).
	Exponential
	// Logarithmic advances by a constant step in log space (a geometric
	// progression in linear space); falls back to NoSmoothing if either
	// endpoint is non-positive.
	Logarithmic
)

// settleLn is ln(1e-4), the natural log of the residual-error threshold an
// Exponential smoother must fall within after its nominal duration.
const settleLn = -9.210340371976184 // math.Log(1e-4)

// Smoother interpolates one parameter's plain value toward a target, one
// sample per call, so audio-rate parameter changes never produce zipper
// noise.
type Smoother struct {
	style     Style
	current   float64
	target    float64
	step      float64
	stepsLeft int
}

// NewSmoother creates a smoother pinned to an initial plain value.
func NewSmoother(style Style, initial float64) Smoother {
	return Smoother{style: style, current: initial, target: initial}
}

// Current returns the smoother's current value without advancing it.
func (s *Smoother) Current() float64 { return s.current }

// Target returns the value the smoother is advancing toward.
func (s *Smoother) Target() float64 { return s.target }

// SetTarget recomputes the step and steps-left from the smoother's current
// value toward newTarget, to be reached over smoothingMs milliseconds at
// sampleRate.
func (s *Smoother) SetTarget(sampleRate, smoothingMs, newTarget float64) {
	s.target = newTarget

	switch s.style {
	case NoSmoothing:
		s.current = newTarget
		s.stepsLeft = 0

	case Linear:
		n := int(math.Round(smoothingMs * sampleRate / 1000))
		if n < 1 {
			n = 1
		}
		s.stepsLeft = n
		s.step = (newTarget - s.current) / float64(n)

	case Exponential:
		n := smoothingMs * sampleRate / 1000
		if n < 1 {
			n = 1
		}
		s.step = 1 - math.Exp(settleLn/n)
		s.stepsLeft = int(math.Ceil(n))

	case Logarithmic:
		if s.current <= 0 || newTarget <= 0 {
			s.current = newTarget
			s.stepsLeft = 0
			return
		}
		n := int(math.Round(smoothingMs * sampleRate / 1000))
		if n < 1 {
			n = 1
		}
		s.stepsLeft = n
		s.step = (math.Log(newTarget) - math.Log(s.current)) / float64(n)
	}
}

// Next advances the smoother by one sample and returns the new current
// value. On the final step it assigns target exactly, avoiding residual
// floating point error.
func (s *Smoother) Next() float32 {
	if s.stepsLeft <= 0 {
		return float32(s.current)
	}

	switch s.style {
	case Linear:
		s.stepsLeft--
		if s.stepsLeft == 0 {
			s.current = s.target
		} else {
			s.current += s.step
		}

	case Exponential:
		s.stepsLeft--
		if s.stepsLeft == 0 {
			s.current = s.target
		} else {
			s.current += (s.target - s.current) * s.step
		}

	case Logarithmic:
		s.stepsLeft--
		if s.stepsLeft == 0 {
			s.current = s.target
		} else {
			s.current = math.Exp(math.Log(s.current) + s.step)
		}

	default:
		s.current = s.target
	}

	return float32(s.current)
}

// FillBlock fills out with one smoothed sample per element, equivalent
// sample-for-sample to len(out) calls to Next. Linear and Logarithmic
// advance one step per element with the same incremental update Next
// uses; no closed-form progression is evaluated. Exponential and
// NoSmoothing call Next per element. Any remaining elements past the
// smoothing horizon are filled with the settled current value.
func (s *Smoother) FillBlock(out []float32) {
	switch s.style {
	case Exponential, NoSmoothing:
		for i := range out {
			out[i] = s.Next()
		}
		return
	}

	n := len(out)
	i := 0
	for ; i < n && s.stepsLeft > 0; i++ {
		s.stepsLeft--
		if s.stepsLeft == 0 {
			s.current = s.target
		} else if s.style == Linear {
			s.current += s.step
		} else { // Logarithmic
			s.current = math.Exp(math.Log(s.current) + s.step)
		}
		out[i] = float32(s.current)
	}
	settled := float32(s.current)
	for ; i < n; i++ {
		out[i] = settled
	}
}

// IsSmoothing reports whether the smoother has not yet reached its target.
func (s *Smoother) IsSmoothing() bool { return s.stepsLeft > 0 }
