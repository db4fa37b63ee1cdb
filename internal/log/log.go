// Package log provides component-scoped structured logging over slog.
package log

import (
	"io"
	"log/slog"
)

// Logger wraps slog.Logger with a component attribute.
type Logger struct {
	*slog.Logger
}

// New creates a logger writing text records to w. verbose lowers the level
// to debug.
func New(w io.Writer, verbose bool) *Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component)}
}

// Discard returns a logger that drops everything, for tests and quiet runs.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
