//go:build arm64

package vst3wrap

const cacheLineSize = 128
