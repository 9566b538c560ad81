// Package layout declares an author's audio I/O shape and carries the
// per-activation buffer configuration and per-block transport info a
// wrapper hands to Process. The shapes here are host-neutral: both CLAP
// and VST3 wrappers read off the same IO, BufferConfig, and Transport
// types.
package layout

// IO declares the channel counts an author's plugin accepts. MainIn and
// MainOut are pointers so a generator (no main input) and an analyzer
// (no main output) can both be expressed by leaving the relevant field
// nil; at least one of the two must be set. AuxIn and AuxOut list the
// channel count of each auxiliary bus in order; a nil or empty slice
// means no auxiliary buses.
type IO struct {
	MainIn  *int
	MainOut *int
	AuxIn   []int
	AuxOut  []int
	Name    string
}

func intPtr(n int) *int { return &n }

// Mono declares a single main input and output bus, one channel each.
func Mono() IO { return IO{MainIn: intPtr(1), MainOut: intPtr(1), Name: "Mono"} }

// Stereo declares a single main input and output bus, two channels each.
func Stereo() IO { return IO{MainIn: intPtr(2), MainOut: intPtr(2), Name: "Stereo"} }

// Generator declares a main output only, no main input — an oscillator
// or synth voice with nothing to process.
func Generator(channels int) IO { return IO{MainOut: intPtr(channels), Name: "Generator"} }

// Analyzer declares a main input only, no main output — a metering or
// analysis plugin that passes no audio back to the host.
func Analyzer(channels int) IO { return IO{MainIn: intPtr(channels), Name: "Analyzer"} }

// WithAux returns a copy of io with the given auxiliary input and output
// bus channel counts attached.
func (io IO) WithAux(in, out []int) IO {
	io.AuxIn = in
	io.AuxOut = out
	return io
}

// NumAuxIn returns the number of auxiliary input buses.
func (io IO) NumAuxIn() int { return len(io.AuxIn) }

// NumAuxOut returns the number of auxiliary output buses.
func (io IO) NumAuxOut() int { return len(io.AuxOut) }

// BufferConfig describes the block-size and sample-rate contract a host
// establishes at activation time, before any Process call. MinFrames and
// MaxFrames bound every block size Process will be called with for the
// life of the activation; a host that cannot honor a declared maximum
// must reject activation rather than call Process with an oversized
// block.
type BufferConfig struct {
	SampleRate float64
	MinFrames  int
	MaxFrames  int
	// Mode records whether the host asked for fixed-size blocks only
	// (every call has exactly MaxFrames frames except possibly the
	// last of a larger host buffer) or variable-size blocks within
	// [MinFrames, MaxFrames].
	Mode BlockMode
}

// BlockMode distinguishes fixed-size from variable-size block delivery.
type BlockMode int

const (
	// VariableBlocks means Process may be called with any frame count
	// in [MinFrames, MaxFrames].
	VariableBlocks BlockMode = iota
	// FixedBlocks means every Process call (but possibly the last in a
	// host-side super-block) carries exactly MaxFrames frames.
	FixedBlocks
)

// Transport carries host timeline information for one process call.
// Every field is optional: a host with no transport (or a CLAP/VST3
// host that declines to report it) leaves Transport at its zero value,
// which authors must treat as a legal "no information available" state,
// not an error.
type Transport struct {
	Playing        bool
	Recording      bool
	Looping        bool
	TempoBPM       float64
	TimeSigNum     int
	TimeSigDenom   int
	SongPositionPPQ float64
	SongPositionSamples int64
}
