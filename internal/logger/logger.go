// Package logger builds the slog loggers used across rofi-tmuxp.
//
// rofi reads the menu entries from stdout, so loggers are always attached to
// a separate sink (stderr in production, a buffer in tests). Loggers are
// handed to components explicitly; nothing here installs a global default.
package logger

import (
	"context"
	"io"
	"log/slog"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// LevelDebug is for verbose debugging information
	LevelDebug LogLevel = iota
	// LevelInfo is for general operational information
	LevelInfo
	// LevelWarn is for warning conditions
	LevelWarn
	// LevelError is for error conditions
	LevelError
)

// toSlogLevel converts our LogLevel to slog.Level
func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFor returns the level used for the given verbosity flags.
// Quiet mode only lets errors through.
func LevelFor(quiet bool) LogLevel {
	if quiet {
		return LevelError
	}
	return LevelInfo
}

// New returns a text logger writing to w at the given minimum level.
// The returned logger is tagged with the application name.
func New(w io.Writer, level LogLevel) *slog.Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(level.toSlogLevel())
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar})
	return slog.New(handler).With(slog.String("logger", "rofi_tmuxp"))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// WithComponent returns base with the component attribute pre-attached.
// A nil base falls back to a discarding logger.
//
// Example:
//
//	log := logger.WithComponent(base, "sessions")
//	log.Warn("Invalid config", "path", path, "error", err)
func WithComponent(base *slog.Logger, component string) *slog.Logger {
	if base == nil {
		base = Discard()
	}
	return base.With(slog.String("component", component))
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
