package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// StdLogger is a lightweight implementation backed by log/slog.
// Output goes to standard error so that command output stays clean.
type StdLogger struct {
	log *slog.Logger
}

// NewStd creates a StdLogger. Verbose loggers emit debug records;
// quiet ones only report warnings and errors.
func NewStd(verbose bool) *StdLogger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return New(os.Stderr, level)
}

// New creates a StdLogger writing text records at or above level to w.
func New(w io.Writer, level string) *StdLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &StdLogger{log: slog.New(handler)}
}

// ParseLevel converts a config level name to slog.Level (default: warn).
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ValidLevel reports whether level is a recognised level name.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelDebug, msg, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelInfo, msg, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelWarn, msg, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	attrs := toAttrs(fields)
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.log.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

func (l *StdLogger) emit(level slog.Level, msg string, fields map[string]interface{}) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}
	l.log.LogAttrs(ctx, level, msg, toAttrs(fields)...)
}

func toAttrs(fields map[string]interface{}) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}
