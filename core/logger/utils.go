package logger

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Event names written to the "event" field.
const (
	EventBuiltin     = "builtin"
	EventLaunch      = "launch"
	EventLaunchError = "launch_error"
	EventSessionEnd  = "session_end"
)

// Logger captures shell events as newline delimited JSON objects.
type Logger struct {
	zl zerolog.Logger
}

// NewJsonLinesLogRecorder creates a Logger that exports events in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		zl: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// NewNopLogger creates a Logger that drops every event.
func NewNopLogger() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// NewSession creates a logger with attached random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return l.session(fmt.Sprintf("%d", rand.Uint64()))
}

// Sessionless creates a logger with an empty session ID.
func (l *Logger) Sessionless() *SessionLogger {
	return l.session("")
}

func (l *Logger) session(id string) *SessionLogger {
	return &SessionLogger{zl: l.zl.With().Str("session", id).Logger()}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	zl zerolog.Logger
}

// Builtin records a builtin invocation.
func (l *SessionLogger) Builtin(argv []string) {
	l.event(EventBuiltin).Strs("argv", argv).Send()
}

// Launch records an external program that ran to completion. signal is empty
// if the program exited normally.
func (l *SessionLogger) Launch(argv []string, exitCode int, signal string, took time.Duration) {
	e := l.event(EventLaunch).Strs("argv", argv).Dur("duration", took)
	if signal != "" {
		e = e.Str("signal", signal)
	} else {
		e = e.Int("exit_code", exitCode)
	}
	e.Send()
}

// LaunchError records an external program that could not be started.
func (l *SessionLogger) LaunchError(argv []string, err error) {
	l.event(EventLaunchError).Strs("argv", argv).AnErr("error", err).Send()
}

// SessionEnd records why the loop stopped.
func (l *SessionLogger) SessionEnd(reason string) {
	l.event(EventSessionEnd).Str("reason", reason).Send()
}

func (l *SessionLogger) event(name string) *zerolog.Event {
	return l.zl.Log().Str("event", name)
}
