// Package xlog wraps log/slog in a small leveled logger, grounded on the
// retrieved corpus's own structured-logging package shape but stripped
// down to what this module actually needs: a stderr sink, an optional
// file sink, and Debug/Info/Warn/Error with key-value attributes. No
// exporter fan-out or multi-handler plumbing — one handler, one writer.
package xlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Level names the four levels this package recognises.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config controls where and how a Logger writes.
type Config struct {
	Level Level  // minimum level emitted; defaults to LevelInfo
	File  string // optional path; when set, output also goes to this file
	JSON  bool   // when true, use slog.JSONHandler instead of TextHandler
}

// Logger is a thin wrapper around *slog.Logger that owns its file sink,
// if any, so callers can Close it on shutdown.
type Logger struct {
	slog *slog.Logger
	file *os.File
}

// New builds a Logger from cfg. Callers should defer Close.
func New(cfg Config) (*Logger, error) {
	var w io.Writer = os.Stderr
	var f *os.File
	if cfg.File != "" {
		var err error
		f, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("xlog: open %s: %w", cfg.File, err)
		}
		w = io.MultiWriter(os.Stderr, f)
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.slogLevel()}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return &Logger{slog: slog.New(h), file: f}, nil
}

// Default returns a Logger writing text-formatted Info-and-above to stderr.
func Default() *Logger {
	l, _ := New(Config{Level: LevelInfo})
	return l
}

// Close releases the file sink, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a Logger that prepends args to every subsequent record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), file: l.file}
}

// Slog exposes the underlying *slog.Logger for callers that need the
// broader slog API (e.g. LogAttrs with a context).
func (l *Logger) Slog() *slog.Logger { return l.slog }

// InfoContext logs at Info level, honouring ctx-carried slog handlers.
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.slog.InfoContext(ctx, msg, args...)
}
