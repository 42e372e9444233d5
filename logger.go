package multregt

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with scanner-specific helpers so build events are
// logged with consistent field names.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithRegionArray adds a region array field to the logger.
func (l *Logger) WithRegionArray(name RegionArray) *Logger {
	return &Logger{
		Logger: l.Logger.With("region_array", string(name)),
	}
}

// LogExpand logs the expansion of a directive stream.
func (l *Logger) LogExpand(directives, records int, err error) {
	if err != nil {
		l.Error("MULTREGT expansion failed",
			"directives", directives,
			"error", err,
		)
		return
	}
	l.Debug("MULTREGT directives expanded",
		"directives", directives,
		"records", records,
	)
}

// LogBuild logs the construction of a search index.
func (l *Logger) LogBuild(records, indexed int, took time.Duration, err error) {
	if err != nil {
		l.Error("MULTREGT index build failed",
			"records", records,
			"error", err,
		)
		return
	}
	l.Info("MULTREGT index built",
		"records", records,
		"indexed", indexed,
		"took", took,
	)
}
