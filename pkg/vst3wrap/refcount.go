package vst3wrap

import "sync/atomic"

// SharedState is the reference-counted object a VST3 component and its
// edit controller share when a host asks for the single-component form
// (IComponent and IEditController implemented by one object). It holds
// exactly one atomic counter, padded to a cache line so AddRef/Release
// traffic from the host's UI thread never false-shares with any
// neighboring hot field.
//
// The counter's atomic idiom follows param.Runtime's cache-line-padded
// atomic slots: a single word needs no acquire/release fence to avoid
// tearing, and COM refcounting has no ordering requirement beyond "the
// object is destroyed exactly when the count reaches zero."
type SharedState struct {
	refCount atomic.Int32
	_        [cacheLineSize - 4]byte
}

// NewSharedState returns a SharedState with an initial reference count
// of 1, matching COM's convention that a freshly created object is
// already referenced by its creator.
func NewSharedState() *SharedState {
	s := &SharedState{}
	s.refCount.Store(1)
	return s
}

// AddRef increments the reference count and returns the new count, as
// IUnknown::addRef does.
func (s *SharedState) AddRef() int32 {
	return s.refCount.Add(1)
}

// Release decrements the reference count and returns the new count. A
// caller observing 0 is responsible for tearing the object down; this
// type does not free anything itself, since Go's GC already owns
// collection once no reference remains reachable — Release's return
// value exists purely to satisfy the VST3 ABI contract a host expects.
func (s *SharedState) Release() int32 {
	return s.refCount.Add(-1)
}

// Count returns the current reference count, for tests and diagnostics.
func (s *SharedState) Count() int32 {
	return s.refCount.Load()
}

// unknownView, componentView, and editControllerView are thin,
// non-owning views over one SharedState: each models one VST3 interface
// a single plugin object must expose (IUnknown, IComponent,
// IEditController) without resorting to field-address arithmetic to
// recover "the struct this vtable pointer belongs to" the way a C COM
// implementation would. Each view holds only a pointer back to the
// shared state; this package has no query-interface dispatch between
// the views.
type unknownView struct {
	state *SharedState
}

func (v unknownView) AddRef() int32  { return v.state.AddRef() }
func (v unknownView) Release() int32 { return v.state.Release() }

type componentView struct {
	unknownView
}

type editControllerView struct {
	unknownView
}

// newViews constructs the component and edit-controller views a
// single-component VST3 plugin object exposes; each embeds an
// unknownView, and all of them share one SharedState.
func newViews(state *SharedState) (componentView, editControllerView) {
	return componentView{unknownView{state}}, editControllerView{unknownView{state}}
}
