package rattrig

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with rattrig-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// VerbosityLevel maps the -v / -V command-line switches to a level:
// Debug for very verbose, Info for verbose, Error otherwise.
func VerbosityLevel(verbose, veryVerbose bool) slog.Level {
	switch {
	case veryVerbose:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	default:
		return slog.LevelError
	}
}

// WithSource adds a source field (input file or stream name) to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// WithType adds the numeric type name to the logger.
func (l *Logger) WithType(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", name),
	}
}

// LogRowError logs a triangle that could not be evaluated.
func (l *Logger) LogRowError(ctx context.Context, index int, id string, err error) {
	l.WarnContext(ctx, "triangle evaluation failed",
		"index", index,
		"id", id,
		"error", err,
	)
}

// LogBatch logs the outcome of a batch evaluation.
func (l *Logger) LogBatch(ctx context.Context, count, degenerate, failed int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch evaluation failed",
			"count", count,
			"duration", duration,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "batch evaluation completed",
		"count", count,
		"degenerate", degenerate,
		"failed", failed,
		"duration", duration,
	)
}
