package primesieve

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with primesieve-specific context.
// This provides structured logging with consistent field names.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBudget adds a sieve budget field to the logger.
func (l *Logger) WithBudget(mem int) *Logger {
	return &Logger{
		Logger: l.Logger.With("mem", mem),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithLimit adds a limit field to the logger.
func (l *Logger) WithLimit(limit uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("limit", limit),
	}
}

// LogGeneration logs a windowed prime generation.
func (l *Logger) LogGeneration(n, mem int, limit uint64, found int, err error) {
	if err != nil {
		l.Error("prime generation failed",
			"n", n,
			"mem", mem,
			"limit", limit,
			"error", err,
		)
	} else if found < n {
		l.Warn("prime generation incomplete",
			"n", n,
			"mem", mem,
			"limit", limit,
			"found", found,
		)
	} else {
		l.Debug("prime generation completed",
			"n", n,
			"mem", mem,
			"limit", limit,
		)
	}
}

// LogSieve logs a windowed sieve query.
func (l *Logger) LogSieve(n, mem int, limit uint64, err error) {
	if err != nil {
		l.Error("sieve query failed",
			"n", n,
			"mem", mem,
			"limit", limit,
			"error", err,
		)
	} else {
		l.Debug("sieve query completed",
			"n", n,
			"mem", mem,
			"limit", limit,
		)
	}
}
