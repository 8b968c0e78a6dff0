package logger

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/config"
)

// New builds a logger for the given environment: pretty text at debug for
// local runs, JSON at debug for dev, JSON at info for prod.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(newPrettyHandler(os.Stdout, slog.LevelDebug))
}

type prettyHandler struct {
	inner slog.Handler
	out   *os.File
	level slog.Level
}

func newPrettyHandler(out *os.File, level slog.Level) *prettyHandler {
	return &prettyHandler{
		inner: slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}),
		out:   out,
		level: level,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *prettyHandler) Handle(ctx context.Context, r slog.Record) error {
	prefix := ""
	switch {
	case r.Level >= slog.LevelError:
		prefix = "ERR "
	case r.Level >= slog.LevelWarn:
		prefix = "WRN "
	case r.Level >= slog.LevelInfo:
		prefix = "INF "
	default:
		prefix = "DBG "
	}

	line := prefix + r.Time.Format("15:04:05.000") + " " + r.Message
	r.Attrs(func(a slog.Attr) bool {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})
	_, err := fmt.Fprintln(h.out, line)
	_ = ctx
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyHandler{inner: h.inner.WithAttrs(attrs), out: h.out, level: h.level}
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	return &prettyHandler{inner: h.inner.WithGroup(name), out: h.out, level: h.level}
}
