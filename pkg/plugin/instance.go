package plugin

import (
	"github.com/zplugin/zplugin/pkg/buffer"
	"github.com/zplugin/zplugin/pkg/event"
	"github.com/zplugin/zplugin/pkg/layout"
	"github.com/zplugin/zplugin/pkg/param"
	"github.com/zplugin/zplugin/pkg/state"
)

// Instance wraps one author value of type A together with the framework
// state a wrapper needs to drive it: the parameter runtime built from
// A's declarations, the registry for ID/hash lookup, and the output
// event queue. Instance methods call directly through the concrete A —
// the compiler monomorphizes Instance[A] per author type, so there is no
// interface-dispatch cost on the audio path even though Author is
// expressed as an interface for the purpose of stating the contract.
type Instance[A Author] struct {
	Info Info
	IO   layout.IO

	author   A
	registry *param.Registry
	runtime  *param.Runtime
	outQueue *event.OutputQueue
	ctx      *ProcessContext

	cfg    layout.BufferConfig
	active bool
}

// NewInstance constructs an Instance from an author value, its metadata,
// and its declared I/O shape. The parameter registry and runtime are
// built immediately from author.Declare() so hash/ID validation happens
// at construction, on the main actor, well before any host activates the
// plugin.
func NewInstance[A Author](author A, info Info, io layout.IO) (*Instance[A], error) {
	decls := author.Declare()
	registry, err := param.NewRegistry(decls)
	if err != nil {
		return nil, err
	}
	runtime := param.NewRuntime(decls)
	if rb, ok := any(author).(RegistryBinder); ok {
		rb.BindRegistry(registry)
	}
	return &Instance[A]{
		Info:     info,
		IO:       io,
		author:   author,
		registry: registry,
		runtime:  runtime,
		ctx:      NewProcessContext(runtime),
	}, nil
}

// Registry returns the parameter registry, for wrappers that need
// hash/ID lookup or enumeration (VST3 parameter info, CLAP param
// extension).
func (inst *Instance[A]) Registry() *param.Registry { return inst.registry }

// Runtime returns the parameter runtime, for wrappers that translate
// host automation events into SetNormalized calls on the main actor.
func (inst *Instance[A]) Runtime() *param.Runtime { return inst.runtime }

// Activate sets the buffer configuration, sizes the output event queue
// to outputQueueCapacity, resets every smoother to its current value,
// and calls the author's Activate. Called on the main actor.
func (inst *Instance[A]) Activate(cfg layout.BufferConfig, outputQueueCapacity int) error {
	inst.cfg = cfg
	inst.outQueue = event.NewOutputQueue(outputQueueCapacity)
	inst.ctx.Output = inst.outQueue
	inst.ctx.SampleRate = cfg.SampleRate
	inst.runtime.ResetSmoothers()
	if err := inst.author.Activate(inst.IO, cfg); err != nil {
		return err
	}
	inst.active = true
	return nil
}

// Deactivate calls the author's Deactivate. Called on the main actor.
func (inst *Instance[A]) Deactivate() {
	if !inst.active {
		return
	}
	inst.author.Deactivate()
	inst.active = false
}

// Reset calls the author's Reset if it implements Resetter; otherwise
// it is a no-op. Called on the main actor.
func (inst *Instance[A]) Reset() {
	if r, ok := any(inst.author).(Resetter); ok {
		r.Reset()
	}
}

// Process runs one audio-actor process call: it populates ctx from main,
// events, and transport, resets the output queue, calls the author's
// Process, and returns both the author's status and the events the
// author queued for output during this call.
func (inst *Instance[A]) Process(main buffer.View, aux buffer.Aux, events []event.Event, transport layout.Transport) (ProcessStatus, []event.Event) {
	inst.ctx.Main = main
	inst.ctx.Aux = aux
	inst.ctx.Events = events
	inst.ctx.Transport = transport
	inst.outQueue.Reset()

	status := inst.author.Process(inst.ctx)
	return status, inst.outQueue.Events()
}

// stateVersion returns the author's declared state_version (§4.6), or
// state.Version if it doesn't implement Versioner.
func (inst *Instance[A]) stateVersion() uint32 {
	if v, ok := any(inst.author).(Versioner); ok {
		return v.StateVersion()
	}
	return state.Version
}

// SaveState writes the author's state_version, parameter values, and —
// if A implements StateSaver — its extension data, to w.
func (inst *Instance[A]) SaveState(w state.Writer) error {
	var ext any
	if sv, ok := any(inst.author).(StateSaver); ok {
		ext = sv
	}
	return state.Save(w, inst.runtime, inst.stateVersion(), ext)
}

// LoadState reads a state envelope from r into the author's parameter
// runtime and, if A implements StateLoader, its extension data, passing
// the saved state_version through for migration. On success, every
// parameter's smoother is retargeted from its freshly loaded value so the
// next Process call doesn't zipper toward it; a later Activate still
// resets smoothers outright, so loading before or after activation both
// leave the runtime in a consistent state. Called on the main actor.
func (inst *Instance[A]) LoadState(r state.Reader) (uint32, error) {
	var ext any
	if sl, ok := any(inst.author).(StateLoader); ok {
		ext = sl
	}
	version, err := state.Load(r, inst.runtime, inst.stateVersion(), ext)
	if err != nil {
		return version, err
	}
	for i := 0; i < inst.runtime.Count(); i++ {
		inst.runtime.RetargetFromNormalized(i, inst.cfg.SampleRate, param.DefaultRetargetSmoothingMs)
	}
	return version, nil
}
