// Package logging builds the task console's slog loggers and carries them
// through a context.Context.
//
// main builds the root logger with New and stores it with WithLogger. The
// console then derives one logger per menu action with ForAction, and the
// task service resolves its logger with FromContextOr, so every line written
// while handling an action shares the same action number and menu name:
//
//	ctx, logger := logging.ForAction(ctx, base, 3, "update")
//	logging.FromContextOr(ctx, fallback).InfoContext(ctx, "updated task",
//	    slog.Int64(logging.KeyTaskID, id),
//	)
//
// Loggers write to stderr; stdout belongs to the interactive menu.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Attribute keys shared by console and service logs.
const (
	KeyAction    = "action"
	KeyMenu      = "menu"
	KeyOperation = "operation"
	KeyTaskID    = "task_id"
)

type ctxKey struct{}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Level maps a configured level name, in any case, to a slog.Level. Unknown
// names map to info.
func Level(name string) slog.Level {
	if lvl, ok := levels[strings.ToLower(name)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// New returns a logger writing to w. format "text" selects the text handler,
// anything else JSON. Debug loggers record the source location. Sensitive
// attributes are redacted by every logger New returns.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := Level(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContextOr returns the logger carried by ctx, or fallback when there is
// none.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}

// ForAction derives the logger for one menu action from base, tagged with the
// action's sequence number and menu name, and stores it in the returned
// context.
func ForAction(ctx context.Context, base *slog.Logger, seq int, menu string) (context.Context, *slog.Logger) {
	logger := base.With(slog.Int(KeyAction, seq), slog.String(KeyMenu, menu))
	return WithLogger(ctx, logger), logger
}
