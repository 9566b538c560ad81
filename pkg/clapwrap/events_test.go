package clapwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zplugin/zplugin/pkg/event"
)

func TestFromNoteTranslatesNoteOn(t *testing.T) {
	e := FromNote(RawNoteEvent{Kind: NoteOn, Time: 10, NoteID: 3, Channel: 0, Key: 60, Velocity: 0.8})
	assert.Equal(t, event.NoteOn, e.Kind)
	assert.Equal(t, int32(10), e.Timing)
	assert.Equal(t, int32(3), *e.VoiceID)
}

func TestFromNoteNegativeIDBecomesNil(t *testing.T) {
	e := FromNote(RawNoteEvent{Kind: NoteOn, NoteID: -1, Key: 60})
	assert.Nil(t, e.VoiceID)
}

func TestFromExpressionTranslatesPressure(t *testing.T) {
	e := FromExpression(RawExpressionEvent{Expression: ExprPressure, Key: 60, Value: 0.5})
	assert.Equal(t, event.Pressure, e.Kind)
	assert.Equal(t, 0.5, e.Value)
}

func TestFromMIDITranslatesCC(t *testing.T) {
	e, ok := FromMIDI(RawMIDIEvent{Data: [3]byte{0xB0, 7, 127}})
	assert.True(t, ok)
	assert.Equal(t, event.CC, e.Kind)
	assert.Equal(t, uint8(7), e.Controller)
}

func TestFromMIDIUnknownStatusIgnored(t *testing.T) {
	_, ok := FromMIDI(RawMIDIEvent{Data: [3]byte{0xF0, 0, 0}})
	assert.False(t, ok)
}
