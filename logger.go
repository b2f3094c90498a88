package spatialgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with spatialgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs an index build.
func (l *Logger) LogBuild(n int, err error) {
	if err != nil {
		l.Error("build failed",
			"items", n,
			"error", err,
		)
	} else {
		l.Debug("build completed",
			"items", n,
		)
	}
}

// LogQuery logs one drained or abandoned query iteration.
func (l *Logger) LogQuery(matched int, drained bool) {
	l.Debug("query finished",
		"matched", matched,
		"drained", drained,
	)
}

// LogBatchQuery logs a batch query operation.
func (l *Logger) LogBatchQuery(ctx context.Context, queries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch query failed",
			"queries", queries,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch query completed",
			"queries", queries,
		)
	}
}
