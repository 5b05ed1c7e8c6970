// SPDX-License-Identifier: MIT

package typedarray

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with typedarray-specific fields.
// It carries the precision-loss diagnostic channel and nothing else.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// DefaultLogger wraps slog.Default(), so hosts control the destination
// through slog.SetDefault.
func DefaultLogger() *Logger {
	return &Logger{Logger: slog.Default()}
}

// LogPrecisionLoss reports that a conversion changed lossy of total values.
func (l *Logger) LogPrecisionLoss(op string, from, to Kind, lossy, total int) {
	l.Warn("possible loss of precision",
		"op", op,
		"from", from.String(),
		"to", to.String(),
		"lossy", lossy,
		"total", total,
	)
}
