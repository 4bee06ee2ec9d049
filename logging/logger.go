package logging

import (
	"io"
	"log/slog"
)

// Logger defines the minimal logging interface used across the module.
// Users can provide their own implementation or use the built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// NewTextLogger creates a Logger writing slog text lines to w.
func NewTextLogger(w io.Writer) Logger {
	return NewSlogAdapter(slog.New(slog.NewTextHandler(w, nil)))
}

// NoOpLogger discards all log records. It is the default wherever a Logger
// is optional.
type NoOpLogger struct{}

// NewNoOpLogger creates a Logger that does nothing.
func NewNoOpLogger() Logger { return NoOpLogger{} }

// Debug implements Logger.
func (NoOpLogger) Debug(string, ...any) {}

// Info implements Logger.
func (NoOpLogger) Info(string, ...any) {}

// Warn implements Logger.
func (NoOpLogger) Warn(string, ...any) {}

// Error implements Logger.
func (NoOpLogger) Error(string, ...any) {}
