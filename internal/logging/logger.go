// Package logging defines the structured-logging interface used across VITAL.
// Implementations wrap log/slog or zap; New picks one from configuration.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "code issued", "destination", dest, "method", method)
type Logger interface {
	// Debug logs low-level flow details (state transitions, timings).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatZap  = "zap"
)

// New builds a Logger writing to w. format is one of FormatText, FormatJSON or
// FormatZap; anything else falls back to text. level is parsed by ParseLevel.
func New(format, level string, w io.Writer) Logger {
	lvl := ParseLevel(level)

	switch strings.ToLower(format) {
	case FormatZap:
		return NewZapLogger(newZapCore(w, lvl))
	case FormatJSON:
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})))
	default:
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown values yield slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Nop returns a Logger that discards everything. Handy for tests and for
// components constructed without a logger.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
