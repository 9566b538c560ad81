package plugin

import (
	"github.com/zplugin/zplugin/pkg/buffer"
	"github.com/zplugin/zplugin/pkg/event"
	"github.com/zplugin/zplugin/pkg/layout"
	"github.com/zplugin/zplugin/pkg/param"
)

// ProcessContext is the single argument passed to an Author's Process
// method: the audio buffers, the sample-accurate input events, the
// output event sink, the current transport, and typed accessors onto
// the parameter runtime. Everything reachable from a ProcessContext is
// safe to touch from the audio actor with no allocation and no lock, by
// construction — the wrapper builds it fresh (but without allocating)
// before each Process call.
type ProcessContext struct {
	Main   buffer.View
	Aux    buffer.Aux
	Events []event.Event
	Output *event.OutputQueue

	Transport  layout.Transport
	SampleRate float64

	rt *param.Runtime
}

// NewProcessContext constructs a context bound to rt. Wrappers build one
// of these per process call (or reuse a single mutable instance, field
// by field, across calls — both satisfy the no-allocation contract as
// long as the struct itself isn't heap-allocated inside Process).
func NewProcessContext(rt *param.Runtime) *ProcessContext {
	return &ProcessContext{rt: rt}
}

// GetFloat returns the smoothed current value of a Continuous parameter
// at index idx, in plain units. Equivalent to calling NextSmoothed once
// and discarding advancement for parameters an author reads without
// driving per-sample, i.e. it reads the smoother's Current() without
// stepping it.
func (c *ProcessContext) GetFloat(idx int) float64 {
	return c.rt.Smoother(idx).Current()
}

// GetInt returns the current plain value of an Integer parameter,
// rounded to the nearest step. Integer parameters are not smoothed.
func (c *ProcessContext) GetInt(idx int) int {
	return int(c.rt.Plain(idx))
}

// GetBool returns the current value of a Boolean parameter.
func (c *ProcessContext) GetBool(idx int) bool {
	return c.rt.Normalized(idx) >= 0.5
}

// GetChoice returns the current selected label of a Choice parameter.
func (c *ProcessContext) GetChoice(idx int) string {
	return c.rt.Declaration(idx).ChoiceLabel(c.rt.Normalized(idx))
}

// NextSmoothed advances parameter idx's smoother by one sample and
// returns the new current value — the per-sample smoothing contract
// (§C2) for authors processing one frame at a time.
func (c *ProcessContext) NextSmoothed(idx int) float32 {
	return c.rt.Smoother(idx).Next()
}

// FillSmoothed advances parameter idx's smoother across an entire block
// at once, writing one value per frame into out. Equivalent to calling
// NextSmoothed len(out) times; see Smoother.FillBlock.
func (c *ProcessContext) FillSmoothed(idx int, out []float32) {
	c.rt.Smoother(idx).FillBlock(out)
}

// EmitOutput pushes an event to the output queue, returning false if the
// queue's capacity is exhausted.
func (c *ProcessContext) EmitOutput(e event.Event) bool {
	if c.Output == nil {
		return false
	}
	return c.Output.Push(e)
}
