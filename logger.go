package primetab

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with primetab-specific context.
// It provides structured logging with consistent field names.
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

// WithFrontier adds a frontier field to the logger.
func (l *Logger) WithFrontier(frontier uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("frontier", frontier),
	}
}

// WithCount adds a prime-count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogExtend logs a growth operation.
func (l *Logger) LogExtend(frontier uint64, added int, err error) {
	if err != nil {
		l.Error("extend failed",
			"frontier", frontier,
			"error", err,
		)
	} else {
		l.Debug("extend completed",
			"frontier", frontier,
			"added", added,
		)
	}
}

// LogSnapshot logs a snapshot save or load operation.
func (l *Logger) LogSnapshot(op, path string, count int, err error) {
	if err != nil {
		l.Error("snapshot "+op+" failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Info("snapshot "+op+" completed",
			"path", path,
			"count", count,
		)
	}
}
