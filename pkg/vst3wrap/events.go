package vst3wrap

import "github.com/zplugin/zplugin/pkg/event"

// RawEvent mirrors the union VST3's Event carries (type tag plus one of
// several payload structs), expressed as a flat Go struct rather than a
// cgo union mirror — the real C layout lives at a cgo boundary this
// package does not own.
type RawEvent struct {
	Type       RawEventType
	SampleOffset int32
	// Note payload.
	NoteID   int32
	Channel  int16
	Pitch    int16
	Velocity float64
	Tuning   float64
	// Note expression payload (VST3 note expression events carry no
	// channel/key of their own — only a noteId — so FromVST3 always
	// produces channel=0, note=0 for them on the unified event; a host
	// that needs the originating channel/key must track it by NoteID
	// itself, a known fidelity gap of the VST3 note expression model
	// this wrapper does not attempt to paper over).
	ExpressionType RawExpressionType
	ExpressionValue float64
}

// RawEventType mirrors VST3's Event::EventTypes enum, restricted to the
// subset this wrapper translates.
type RawEventType int

const (
	EventNoteOn RawEventType = iota
	EventNoteOff
	EventNoteExpressionValue
	EventPolyPressure
)

// RawExpressionType mirrors VST3's NoteExpressionTypeIDs, restricted to
// the subset the unified event model carries.
type RawExpressionType int

const (
	ExprVolume RawExpressionType = iota
	ExprPan
	ExprTuning
	ExprVibrato
	ExprBrightness
	// ExprCustom stands in for a host-allocated custom NoteExpressionTypeID,
	// VST3's mechanism for expression dimensions beyond its five built-in
	// types. It is the wire identity for the unified model's generic
	// Expression kind.
	ExprCustom
)

func voiceIDOrNil(noteID int32) *int32 {
	if noteID < 0 {
		return nil
	}
	id := noteID
	return &id
}

// FromVST3 translates a VST3 event into the unified event model.
func FromVST3(e RawEvent) (event.Event, bool) {
	voiceID := voiceIDOrNil(e.NoteID)
	switch e.Type {
	case EventNoteOn:
		return event.NewNoteOn(e.SampleOffset, voiceID, e.Channel, e.Pitch, e.Velocity), true
	case EventNoteOff:
		return event.NewNoteOff(e.SampleOffset, voiceID, e.Channel, e.Pitch, e.Velocity), true
	case EventPolyPressure:
		return event.NewPressure(e.SampleOffset, voiceID, e.Channel, e.Pitch, e.Velocity), true
	case EventNoteExpressionValue:
		switch e.ExpressionType {
		case ExprVolume:
			return event.NewVolume(e.SampleOffset, voiceID, 0, 0, e.ExpressionValue), true
		case ExprPan:
			return event.NewPan(e.SampleOffset, voiceID, 0, 0, e.ExpressionValue), true
		case ExprTuning:
			return event.NewTuning(e.SampleOffset, voiceID, 0, 0, e.ExpressionValue), true
		case ExprVibrato:
			return event.NewVibrato(e.SampleOffset, voiceID, 0, 0, e.ExpressionValue), true
		case ExprBrightness:
			return event.NewBrightness(e.SampleOffset, voiceID, 0, 0, e.ExpressionValue), true
		case ExprCustom:
			return event.NewExpression(e.SampleOffset, voiceID, 0, 0, e.ExpressionValue), true
		default:
			return event.NewExpression(e.SampleOffset, voiceID, 0, 0, e.ExpressionValue), true
		}
	default:
		return event.Event{}, false
	}
}

// ToVST3 translates a unified output event back into VST3's model. VST3
// has no wire representation for VoiceTerminated, Choke, or the channel
// MIDI kinds (CC, ChannelPressure, PitchBend, ProgramChange) on its
// output event queue; those are dropped, which ToVST3 reports via its
// bool return so a wrapper can count/log drops rather than silently
// losing them without a trace.
func ToVST3(e event.Event) (RawEvent, bool) {
	noteID := int32(-1)
	if e.VoiceID != nil {
		noteID = *e.VoiceID
	}
	switch e.Kind {
	case event.NoteOn:
		return RawEvent{Type: EventNoteOn, SampleOffset: e.Timing, NoteID: noteID, Channel: e.Channel, Pitch: e.Note, Velocity: e.Velocity}, true
	case event.NoteOff:
		return RawEvent{Type: EventNoteOff, SampleOffset: e.Timing, NoteID: noteID, Channel: e.Channel, Pitch: e.Note, Velocity: e.Velocity}, true
	case event.Pressure:
		return RawEvent{Type: EventPolyPressure, SampleOffset: e.Timing, NoteID: noteID, Channel: e.Channel, Pitch: e.Note, Velocity: e.Value}, true
	case event.Volume:
		return RawEvent{Type: EventNoteExpressionValue, SampleOffset: e.Timing, NoteID: noteID, ExpressionType: ExprVolume, ExpressionValue: e.Value}, true
	case event.Pan:
		return RawEvent{Type: EventNoteExpressionValue, SampleOffset: e.Timing, NoteID: noteID, ExpressionType: ExprPan, ExpressionValue: e.Value}, true
	case event.Tuning:
		return RawEvent{Type: EventNoteExpressionValue, SampleOffset: e.Timing, NoteID: noteID, ExpressionType: ExprTuning, ExpressionValue: e.Value}, true
	case event.Vibrato:
		return RawEvent{Type: EventNoteExpressionValue, SampleOffset: e.Timing, NoteID: noteID, ExpressionType: ExprVibrato, ExpressionValue: e.Value}, true
	case event.Brightness:
		return RawEvent{Type: EventNoteExpressionValue, SampleOffset: e.Timing, NoteID: noteID, ExpressionType: ExprBrightness, ExpressionValue: e.Value}, true
	case event.Expression:
		return RawEvent{Type: EventNoteExpressionValue, SampleOffset: e.Timing, NoteID: noteID, ExpressionType: ExprCustom, ExpressionValue: e.Value}, true
	default:
		return RawEvent{}, false
	}
}
