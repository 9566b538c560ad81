//go:build !arm64

package param

// cacheLineSize is the padding unit used to keep neighboring parameter
// slots from sharing a cache line with the audio-actor's hot fields. 64
// bytes is the conservative fallback for x86-64 and everything else.
const cacheLineSize = 64
