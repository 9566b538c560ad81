// Package logging provides main-actor structured logging, built on
// charmbracelet/log. It exists only for the main actor — init,
// activation, state load/save, host queries — and must never be called
// from Process; the audio-actor-safe counterpart lives in pkg/debug,
// which accumulates diagnostics into an allocation-free struct instead
// of formatting and writing log lines.
package logging

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Logger wraps a charmbracelet/log.Logger scoped to one plugin instance.
type Logger struct {
	l          *charmlog.Logger
	InstanceID uuid.UUID
}

// New creates a Logger that writes to stderr, prefixed with the given
// plugin name and a freshly generated instance ID so a host that loads
// several instances of the same plugin in one process (common for VST3
// hosts opening multiple tracks) can still tell their log lines apart —
// the plugin name alone repeats across instances.
func New(pluginName string) *Logger {
	id := uuid.New()
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix:          pluginName + " " + id.String()[:8],
		ReportTimestamp: true,
	})
	return &Logger{l: l, InstanceID: id}
}

// WithFields returns a child Logger that always attaches the given
// key/value pairs, e.g. Logger.WithFields("voice", id) for per-voice
// diagnostics during a synth's note lifecycle.
func (lg *Logger) WithFields(kvs ...any) *Logger {
	return &Logger{l: lg.l.With(kvs...)}
}

func (lg *Logger) Debug(msg string, kvs ...any) { lg.l.Debug(msg, kvs...) }
func (lg *Logger) Info(msg string, kvs ...any)  { lg.l.Info(msg, kvs...) }
func (lg *Logger) Warn(msg string, kvs ...any)  { lg.l.Warn(msg, kvs...) }
func (lg *Logger) Error(msg string, kvs ...any) { lg.l.Error(msg, kvs...) }
