package glyphinfo

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/glyphinfo/ingest"
)

// Logger wraps slog.Logger with glyphinfo-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// If w is nil, logs go to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// If w is nil, logs go to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSource adds a source field to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// LogIngest logs the outcome of one source. Callers attach the source name
// with WithSource.
func (l *Logger) LogIngest(ctx context.Context, stats ingest.SourceStats, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ingest failed",
			"duration", duration,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "ingest completed",
		"accepted", stats.Accepted,
		"skipped", stats.Skipped,
		"overridden", stats.Overridden,
		"duration", duration,
	)
}

// LogBuild logs the size of a finished store.
func (l *Logger) LogBuild(ctx context.Context, records, names int, duration time.Duration) {
	l.InfoContext(ctx, "glyph data built",
		"records", records,
		"names", names,
		"duration", duration,
	)
}

// LogSnapshot logs a snapshot operation. op is "encode", "decode", "load" or
// "save"; name is the blob name when one is involved.
func (l *Logger) LogSnapshot(ctx context.Context, op, name string, size int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"op", op,
			"name", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "snapshot completed",
		"op", op,
		"name", name,
		"bytes", size,
		"duration", duration,
	)
}
