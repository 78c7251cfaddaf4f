package skycat

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/skycat/pixeltree"
)

// Logger wraps slog.Logger with skycat-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithCatalog adds a catalog name field to the logger.
func (l *Logger) WithCatalog(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("catalog", name),
	}
}

// WithOrder adds a reference order field to the logger.
func (l *Logger) WithOrder(order int) *Logger {
	return &Logger{
		Logger: l.Logger.With("order", order),
	}
}

// LogOpen logs a catalog load.
func (l *Logger) LogOpen(ctx context.Context, name string, tiles int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "open failed",
			"catalog", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "catalog opened",
			"catalog", name,
			"tiles", tiles,
		)
	}
}

// LogAlign logs an alignment.
func (l *Logger) LogAlign(ctx context.Context, mode pixeltree.Mode, left, right, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "align failed",
			"mode", mode.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "align completed",
			"mode", mode.String(),
			"left", left,
			"right", right,
			"rows", rows,
		)
	}
}

// LogSearch logs a region search.
func (l *Logger) LogSearch(ctx context.Context, name string, regions, tiles, kept int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"catalog", name,
			"regions", regions,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"catalog", name,
			"regions", regions,
			"tiles", tiles,
			"kept", kept,
		)
	}
}
