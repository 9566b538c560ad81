// Package buffer provides the zero-copy audio buffer view the framework
// hands to an author's Process callback, and the three ways an author may
// iterate it.
package buffer

// View is a channel-pointer view over host-owned sample memory. It exists
// only for the duration of one process call; the framework never copies
// samples for main I/O, and no operation may extend Channels or Frames
// beyond what the host supplied.
type View struct {
	Channels [][]float32
	Frames   int
}

// NumChannels returns the channel count of the view.
func (v View) NumChannels() int { return len(v.Channels) }

// Channel returns channel ch, sliced to Frames.
func (v View) Channel(ch int) []float32 { return v.Channels[ch][:v.Frames] }

// Frame exposes mutable access to every channel at one sample index,
// yielded by PerSample.
type Frame struct {
	channels [][]float32
	index    int
}

// NumChannels returns the channel count visible at this frame.
func (f Frame) NumChannels() int { return len(f.channels) }

// Get returns the sample on channel ch at this frame's index.
func (f Frame) Get(ch int) float32 { return f.channels[ch][f.index] }

// Set writes the sample on channel ch at this frame's index.
func (f Frame) Set(ch int, v float32) { f.channels[ch][f.index] = v }

// PerSample calls fn once for each sample index in [0, Frames), each call
// exposing mutable access to every channel at that index. This is the
// per-sample iteration strategy; it shares the same backing memory as Raw
// and PerBlock.
func (v View) PerSample(fn func(f Frame)) {
	for i := 0; i < v.Frames; i++ {
		fn(Frame{channels: v.Channels, index: i})
	}
}

// PerBlock calls fn once per contiguous sub-range of size bs (the final
// sub-range may be shorter), passing the starting sample offset and a
// View over that sub-range. Each sub-block is itself a zero-copy View
// into the same memory. PerBlock allocates one channel-header slice per
// call and reuses it for every sub-block, so a block View is only valid
// for the duration of its own fn call; Raw and PerSample allocate nothing.
func (v View) PerBlock(bs int, fn func(offset int, block View)) {
	if bs <= 0 {
		bs = v.Frames
	}
	sub := make([][]float32, len(v.Channels))
	for offset := 0; offset < v.Frames; offset += bs {
		n := bs
		if offset+n > v.Frames {
			n = v.Frames - offset
		}
		for ch := range v.Channels {
			sub[ch] = v.Channels[ch][offset : offset+n]
		}
		fn(offset, View{Channels: sub, Frames: n})
	}
}

// Raw returns the underlying [channels][frames] view for authors who want
// to loop themselves.
func (v View) Raw() [][]float32 { return v.Channels }

// Clear zeros every channel in the view.
func (v View) Clear() {
	for ch := range v.Channels {
		for i := range v.Channels[ch][:v.Frames] {
			v.Channels[ch][i] = 0
		}
	}
}

// CopyFrom copies src into v, channel-for-channel, up to the smaller of
// the two channel counts and frame counts. Used by wrappers and authors
// implementing bypass/pass-through.
func CopyFrom(dst, src View) {
	n := dst.NumChannels()
	if src.NumChannels() < n {
		n = src.NumChannels()
	}
	for ch := 0; ch < n; ch++ {
		copy(dst.Channel(ch), src.Channel(ch))
	}
}

// Aux carries the zero-or-more auxiliary buses attached to a process
// call: one View per bus, inputs and outputs kept separate. For VST3,
// auxiliary *inputs* arrive copied into wrapper-owned scratch (VST3 and
// CLAP disagree on shared-buffer semantics for aux buses); that copy is a
// wrapper-layer concern (pkg/vst3wrap), never something Aux itself does.
// Main I/O is always zero-copy and is carried outside Aux, as the plain
// View passed to Process.
type Aux struct {
	Inputs  []View
	Outputs []View
}
