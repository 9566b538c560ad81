package vst3wrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassIDIsStableForSameID(t *testing.T) {
	a := ClassID("com.zplugin.examples.gain")
	b := ClassID("com.zplugin.examples.gain")
	assert.Equal(t, a, b)
}

func TestClassIDDiffersAcrossIDs(t *testing.T) {
	a := ClassID("com.zplugin.examples.gain")
	b := ClassID("com.zplugin.examples.delay")
	assert.NotEqual(t, a, b)
}
