package logger

import (
	"context"
	"io"
	"log/slog"
)

type logFormat int

const (
	formatJSON logFormat = iota
	formatKV
)

// contextHandler decorates a slog.Handler with correlation attributes carried
// in context: rid, update/user/chat identifiers and the current handler name.
type contextHandler struct {
	inner slog.Handler
}

func newContextHandler(format logFormat, w io.Writer, level slog.Leveler) *contextHandler {
	opts := &slog.HandlerOptions{Level: level}
	var inner slog.Handler
	if format == formatKV {
		inner = slog.NewTextHandler(w, opts)
	} else {
		inner = slog.NewJSONHandler(w, opts)
	}
	return &contextHandler{inner: inner}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if rid := RIDFrom(ctx); rid != "" {
		r.AddAttrs(slog.String("rid", rid))
	}
	if id := UpdateIDFrom(ctx); id != 0 {
		r.AddAttrs(slog.Int("update_id", id))
	}
	if id := UserIDFrom(ctx); id != 0 {
		r.AddAttrs(slog.Int64("user_id", id))
	}
	if id := ChatIDFrom(ctx); id != 0 {
		r.AddAttrs(slog.Int64("chat_id", id))
	}
	if name := HandlerFrom(ctx); name != "" {
		r.AddAttrs(slog.String("handler", name))
	}
	return h.inner.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{inner: h.inner.WithGroup(name)}
}
