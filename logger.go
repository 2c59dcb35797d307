package poolparty

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pool-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", name),
	}
}

// LogGrow logs a capacity growth event.
func (l *Logger) LogGrow(oldCapacity, newCapacity int) {
	l.Debug("pool grown",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
	)
}
