package plugin

import (
	"github.com/zplugin/zplugin/pkg/layout"
	"github.com/zplugin/zplugin/pkg/param"
	"github.com/zplugin/zplugin/pkg/state"
)

// ProcessStatus is the closed set of outcomes an author's Process call
// may report, read by the wrapper to decide how to answer the host's
// "should I keep calling process" question.
type ProcessStatus int

const (
	// StatusNormal means the plugin produced audio and should keep
	// being called as long as the host has work for it.
	StatusNormal ProcessStatus = iota
	// StatusSilence means the output buffer is all zero and the host
	// may skip calling process again until new input or events arrive.
	StatusSilence
	// StatusTail means the plugin is still producing a non-silent
	// release tail (reverb, delay) after its input and events went
	// quiet, and must keep being called until it reports Silence.
	StatusTail
	// StatusKeepAlive means the plugin needs to keep being called even
	// though it currently produces silence (e.g. a synth voice warming
	// up, or free-running internal state).
	StatusKeepAlive
	// StatusErr means the call failed; the wrapper should treat the
	// output buffer as undefined and surface an error path to the host
	// rather than passing output through.
	StatusErr
)

// Author is the contract a plugin implementation satisfies. It is
// monomorphized at compile time via Instance[A Author] — there is no
// runtime vtable dispatch on the audio path; the Go compiler devirtualizes
// every call through a concrete A.
type Author interface {
	// Declare is called once on the main actor, by NewInstance, before
	// any activation, and returns the parameter declarations this author
	// wants to register.
	Declare() []param.Declaration

	// Activate is called on the main actor whenever the host
	// (re)activates the plugin with a new buffer configuration. It may
	// allocate and acquire resources; it must not be called while a
	// Process call from a prior activation is still in flight.
	Activate(io layout.IO, cfg layout.BufferConfig) error

	// Deactivate is called on the main actor when the host deactivates
	// the plugin. Resources acquired in Activate should be released
	// here, not in Process.
	Deactivate()

	// Process runs on the audio actor and must not allocate, lock, or
	// perform blocking I/O. It reads ctx's buffers and events and
	// writes ctx.Main's output channels in place.
	Process(ctx *ProcessContext) ProcessStatus
}

// Resetter is an optional Author extension for plugins that need to
// clear internal state (filter memory, delay lines) without a full
// deactivate/activate cycle, e.g. on host transport loop or host-issued
// reset.
type Resetter interface {
	Reset()
}

// StateSaver is an optional Author extension for plugins that persist
// data beyond their declared parameters.
type StateSaver interface {
	state.ExtensionWriter
}

// StateLoader is an optional Author extension, the load-side counterpart
// of StateSaver.
type StateLoader interface {
	state.ExtensionReader
}

// Versioner is an optional Author extension for plugins that bump their
// saved-state format (state_version, §4.6) across releases. SaveState
// writes StateVersion() into the envelope header; LoadState rejects a
// saved version above it with state.ErrVersionTooNew rather than
// attempting to read a layout this build predates. An author that
// doesn't implement Versioner gets state.Version (1).
type Versioner interface {
	StateVersion() uint32
}

// RegistryBinder is an optional Author extension for plugins that want
// to resolve their own parameter indices by ID once, at construction,
// rather than looking them up by ID on every Process call. Instance
// calls BindRegistry once, immediately after building the registry from
// Declare's output, before any Activate or Process call.
type RegistryBinder interface {
	BindRegistry(reg *param.Registry)
}
