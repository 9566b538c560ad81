package clapwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zplugin/zplugin/pkg/param"
)

func TestFormatContinuousWithUnit(t *testing.T) {
	d := param.Float("gain", "Gain").Range(-60, 24).Unit("dB").Build()
	assert.Equal(t, "0.00 dB", Format(d, 0))
}

func TestFormatBoolean(t *testing.T) {
	d := param.Bool("bypass", "Bypass").Build()
	assert.Equal(t, "On", Format(d, 1))
	assert.Equal(t, "Off", Format(d, 0))
}

func TestFormatChoice(t *testing.T) {
	d := param.ChoiceOf("mode", "Mode", "Clean", "Dirty").Build()
	assert.Equal(t, "Dirty", Format(d, 1))
}

func TestParseRoundTripsContinuous(t *testing.T) {
	d := param.Float("gain", "Gain").Range(-60, 24).Unit("dB").Build()
	v, err := Parse(d, "6.00 dB")
	require.NoError(t, err)
	assert.InDelta(t, 6.0, v, 1e-6)
}

func TestParseRejectsUnknownChoice(t *testing.T) {
	d := param.ChoiceOf("mode", "Mode", "Clean", "Dirty").Build()
	_, err := Parse(d, "Nonexistent")
	assert.Error(t, err)
}
