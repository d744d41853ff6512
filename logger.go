package simex

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dataset-access context.
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

// WithPath adds the dataset path to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogResolve logs the resolution of an index specification.
func (l *Logger) LogResolve(ctx context.Context, spec string, selected int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "resolve failed",
			"spec", spec,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "resolve completed",
			"spec", spec,
			"selected", selected,
		)
	}
}

// LogRead logs an eager retrieval.
func (l *Logger) LogRead(ctx context.Context, spec string, count int, poissonize bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"spec", spec,
			"poissonize", poissonize,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed",
			"spec", spec,
			"patterns", count,
			"poissonize", poissonize,
		)
	}
}

// LogStream logs the completion or failure of a streamed retrieval.
func (l *Logger) LogStream(ctx context.Context, spec string, yielded int, poissonize bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "stream failed",
			"spec", spec,
			"yielded", yielded,
			"poissonize", poissonize,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "stream completed",
			"spec", spec,
			"yielded", yielded,
			"poissonize", poissonize,
		)
	}
}
