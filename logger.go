package hashgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hashgo-specific context.
// The library core is pure and never logs; Logger exists for callers
// (such as the hashgo CLI) that want structured logging with consistent
// field names around hash computations.
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

// WithAlgo adds the accumulator algorithm name to the logger.
func (l *Logger) WithAlgo(algo string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algo", algo),
	}
}

// WithInputSize adds the input length in bytes to the logger.
func (l *Logger) WithInputSize(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("input_size", n),
	}
}
