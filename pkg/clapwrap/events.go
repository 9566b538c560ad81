package clapwrap

import "github.com/zplugin/zplugin/pkg/event"

// RawNoteEvent mirrors the fields a clap_event_note_t carries, expressed
// as a plain Go struct rather than a cgo struct mirror — the actual C
// layout is outside this module's scope (it is defined by the CLAP
// header, consumed at a cgo boundary this package does not own).
type RawNoteEvent struct {
	Kind        NoteEventKind
	Time        uint32
	NoteID      int32
	PortIndex   int16
	Channel     int16
	Key         int16
	Velocity    float64
}

// NoteEventKind distinguishes the CLAP note event subtypes this package
// translates.
type NoteEventKind int

const (
	NoteOn NoteEventKind = iota
	NoteOff
	NoteChoke
	NoteExpression
)

// RawExpressionEvent mirrors clap_event_note_expression_t.
type RawExpressionEvent struct {
	Time      uint32
	Expression ExpressionType
	NoteID    int32
	PortIndex int16
	Channel   int16
	Key       int16
	Value     float64
}

// ExpressionType mirrors CLAP's note expression type enum.
type ExpressionType int

const (
	ExprVolume ExpressionType = iota
	ExprPan
	ExprTuning
	ExprVibrato
	ExprExpression
	ExprBrightness
	ExprPressure
)

// RawMIDIEvent mirrors clap_event_midi_t: a raw 3-byte channel MIDI
// message, used for CC/channel-pressure/pitch-bend/program-change.
type RawMIDIEvent struct {
	Time     uint32
	Data     [3]byte
}

func voiceIDOrNil(noteID int32) *int32 {
	if noteID < 0 {
		return nil
	}
	id := noteID
	return &id
}

// FromNote translates a CLAP note event into the unified event model.
func FromNote(e RawNoteEvent) event.Event {
	voiceID := voiceIDOrNil(e.NoteID)
	switch e.Kind {
	case NoteOff:
		return event.NewNoteOff(int32(e.Time), voiceID, e.Channel, e.Key, e.Velocity)
	case NoteChoke:
		return event.NewChoke(int32(e.Time), voiceID, e.Channel, e.Key)
	default:
		return event.NewNoteOn(int32(e.Time), voiceID, e.Channel, e.Key, e.Velocity)
	}
}

// FromExpression translates a CLAP note expression event into the
// unified event model.
func FromExpression(e RawExpressionEvent) event.Event {
	voiceID := voiceIDOrNil(e.NoteID)
	switch e.Expression {
	case ExprVolume:
		return event.NewVolume(int32(e.Time), voiceID, e.Channel, e.Key, e.Value)
	case ExprPan:
		return event.NewPan(int32(e.Time), voiceID, e.Channel, e.Key, e.Value)
	case ExprTuning:
		return event.NewTuning(int32(e.Time), voiceID, e.Channel, e.Key, e.Value)
	case ExprVibrato:
		return event.NewVibrato(int32(e.Time), voiceID, e.Channel, e.Key, e.Value)
	case ExprBrightness:
		return event.NewBrightness(int32(e.Time), voiceID, e.Channel, e.Key, e.Value)
	case ExprPressure:
		return event.NewPressure(int32(e.Time), voiceID, e.Channel, e.Key, e.Value)
	default:
		return event.NewExpression(int32(e.Time), voiceID, e.Channel, e.Key, e.Value)
	}
}

// FromMIDI translates a raw channel MIDI message into the unified event
// model, covering the subset CLAP's MIDI passthrough event carries: CC,
// channel pressure, pitch bend, and program change.
func FromMIDI(e RawMIDIEvent) (event.Event, bool) {
	status := e.Data[0] & 0xF0
	channel := int16(e.Data[0] & 0x0F)
	switch status {
	case 0xB0:
		return event.NewCC(int32(e.Time), channel, e.Data[1], float64(e.Data[2])/127.0), true
	case 0xD0:
		return event.NewChannelPressure(int32(e.Time), channel, float64(e.Data[1])/127.0), true
	case 0xE0:
		raw := int(e.Data[1]) | int(e.Data[2])<<7
		return event.NewPitchBend(int32(e.Time), channel, float64(raw-8192)/8192.0), true
	case 0xC0:
		return event.NewProgramChange(int32(e.Time), channel, e.Data[1]), true
	default:
		return event.Event{}, false
	}
}
