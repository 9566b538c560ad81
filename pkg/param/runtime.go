package param

import (
	"math"
	"sync/atomic"
)

// slot holds one parameter's atomic normalized value, padded to a full
// cache line so that concurrent main-actor writes to one parameter never
// cause false sharing with the audio actor's reads of a neighbor.
type slot struct {
	value atomic.Uint32
	_     [cacheLineSize - 4]byte
}

func (s *slot) load() float32 {
	return math.Float32frombits(s.value.Load())
}

func (s *slot) store(v float32) {
	s.value.Store(math.Float32bits(v))
}

// Runtime is the lock-free parameter state shared between the main actor
// (writer) and the audio actor (reader): a contiguous, cache-line-aligned
// array of atomic normalized values plus a parallel bank of smoothers.
//
// Reads and writes use plain atomic loads/stores (monotonic ordering) — a
// single 32-bit word needs no acquire/release semantics to avoid tearing,
// and the framework places no ordering requirement across parameters.
type Runtime struct {
	decls     []Declaration
	slots     []slot
	smoothers []Smoother
}

// NewRuntime builds a Runtime from a plugin's parameter declarations. Every
// parameter starts at its default normalized value with an un-smoothed
// (steps-left == 0) smoother pinned to the default plain value.
func NewRuntime(decls []Declaration) *Runtime {
	rt := &Runtime{
		decls:     decls,
		slots:     make([]slot, len(decls)),
		smoothers: make([]Smoother, len(decls)),
	}
	for i, d := range decls {
		norm := d.DefaultNormalized()
		rt.slots[i].store(float32(norm))
		rt.smoothers[i] = Smoother{
			style:   d.Smoothing,
			current: d.Unnormalize(norm),
			target:  d.Unnormalize(norm),
		}
	}
	return rt
}

// Count returns the number of parameters.
func (rt *Runtime) Count() int { return len(rt.decls) }

// Declaration returns the compile-time declaration for index i.
func (rt *Runtime) Declaration(i int) Declaration { return rt.decls[i] }

// Normalized reads the current normalized value of parameter i. Safe to
// call from the audio actor.
func (rt *Runtime) Normalized(i int) float64 {
	return float64(rt.slots[i].load())
}

// SetNormalized writes a new normalized value for parameter i. Called from
// the main actor; visible to the audio actor by the next process call that
// begins after this returns.
func (rt *Runtime) SetNormalized(i int, norm float64) {
	rt.slots[i].store(float32(norm))
}

// Plain returns the current plain value of parameter i.
func (rt *Runtime) Plain(i int) float64 {
	return rt.decls[i].Unnormalize(rt.Normalized(i))
}

// Smoother returns a pointer to parameter i's smoother. Smoothers are
// owned exclusively by the audio actor: the wrapper calls SetTarget on
// this smoother when it flushes a queued parameter change, and the
// author's ProcessContext calls Next/FillBlock to advance it.
func (rt *Runtime) Smoother(i int) *Smoother {
	return &rt.smoothers[i]
}

// DefaultRetargetSmoothingMs is the smoothing duration RetargetFromNormalized
// uses when a caller has no more specific duration in mind: short enough
// that a state load settles well within one UI refresh, long enough to
// avoid an audible zipper on the next activation.
const DefaultRetargetSmoothingMs = 20.0

// RetargetFromNormalized recomputes parameter i's smoother target from
// its current atomic value, used after a state load (§C5) to bring
// smoothers in line with freshly loaded values without an audible zipper.
func (rt *Runtime) RetargetFromNormalized(i int, sampleRate float64, smoothingMs float64) {
	plain := rt.decls[i].Unnormalize(rt.Normalized(i))
	rt.smoothers[i].SetTarget(sampleRate, smoothingMs, plain)
}

// ResetSmoothers snaps every smoother to its parameter's current value,
// called on activation per the lifecycle contract (§3: "each activation
// ... resets smoothers to current param values").
func (rt *Runtime) ResetSmoothers() {
	for i := range rt.smoothers {
		plain := rt.decls[i].Unnormalize(rt.Normalized(i))
		rt.smoothers[i].current = plain
		rt.smoothers[i].target = plain
		rt.smoothers[i].stepsLeft = 0
	}
}
