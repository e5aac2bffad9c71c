// Package logging provides a deliberately small, framework-agnostic logging
// interface so components never import the underlying logger directly.
package logging

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is the contract components depend on.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning.
	Warn(msg string, fields ...Field)

	// Error logs an error.
	Error(msg string, fields ...Field)

	// With returns a child logger with persistent fields.
	With(fields ...Field) Logger
}

// Field is a simple key/value pair for structured logging fields.
type Field struct {
	Key   string
	Value interface{}
}

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	zl zerolog.Logger
}

// New constructs the production logger. Verbose enables debug level; output
// switches to the console writer when stderr is a terminal.
func New(verbose bool) *ZerologLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()

	if isatty.IsTerminal(os.Stderr.Fd()) {
		zl = zl.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return &ZerologLogger{zl: zl}
}

func (z *ZerologLogger) emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}

func (z *ZerologLogger) Debug(msg string, fields ...Field) { z.emit(z.zl.Debug(), msg, fields) }
func (z *ZerologLogger) Info(msg string, fields ...Field)  { z.emit(z.zl.Info(), msg, fields) }
func (z *ZerologLogger) Warn(msg string, fields ...Field)  { z.emit(z.zl.Warn(), msg, fields) }
func (z *ZerologLogger) Error(msg string, fields ...Field) { z.emit(z.zl.Error(), msg, fields) }

func (z *ZerologLogger) With(fields ...Field) Logger {
	ctx := z.zl.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &ZerologLogger{zl: ctx.Logger()}
}

// Noop discards everything. Useful as a default and in tests.
type Noop struct{}

func (Noop) Debug(string, ...Field) {}
func (Noop) Info(string, ...Field)  {}
func (Noop) Warn(string, ...Field)  {}
func (Noop) Error(string, ...Field) {}
func (n Noop) With(...Field) Logger { return n }
