// Package logger provides the structured logger used across adapterqa.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownLevel is returned when a log level name is not recognised.
var ErrUnknownLevel = errors.New("unknown log level")

// Logger is a leveled key-value logger.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)

	// With returns a logger that adds keyvals to every record.
	With(keyvals ...any) Logger
}

// SlogLogger implements Logger on top of log/slog.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger creates a text logger writing records at or above level to w.
func NewSlogLogger(w io.Writer, level slog.Level) *SlogLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return &SlogLogger{l: slog.New(handler)}
}

// Debug logs at debug level.
func (s *SlogLogger) Debug(msg string, keyvals ...any) {
	s.l.Debug(msg, keyvals...)
}

// Info logs at info level.
func (s *SlogLogger) Info(msg string, keyvals ...any) {
	s.l.Info(msg, keyvals...)
}

// Warn logs at warn level.
func (s *SlogLogger) Warn(msg string, keyvals ...any) {
	s.l.Warn(msg, keyvals...)
}

// Error logs at error level.
func (s *SlogLogger) Error(msg string, keyvals ...any) {
	s.l.Error(msg, keyvals...)
}

// With returns a child logger.
func (s *SlogLogger) With(keyvals ...any) Logger {
	return &SlogLogger{l: s.l.With(keyvals...)}
}

// Enabled reports whether records at level would be written.
func (s *SlogLogger) Enabled(level slog.Level) bool {
	return s.l.Enabled(context.Background(), level)
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Wrapf(ErrUnknownLevel, "%q", name)
	}
}

type noOpLogger struct{}

// NewNoOpLogger returns a Logger that discards everything.
func NewNoOpLogger() Logger {
	return noOpLogger{}
}

func (noOpLogger) Debug(string, ...any) {}
func (noOpLogger) Info(string, ...any)  {}
func (noOpLogger) Warn(string, ...any)  {}
func (noOpLogger) Error(string, ...any) {}

func (n noOpLogger) With(...any) Logger {
	return n
}
