//go:build arm64

package param

// cacheLineSize is the padding unit used to keep neighboring parameter
// slots from sharing a cache line with the audio-actor's hot fields.
// 64-bit ARM parts commonly report a 128-byte line.
const cacheLineSize = 128
