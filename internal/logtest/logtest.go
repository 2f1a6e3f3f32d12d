// Package logtest provides a slog logger that routes through t.Log, so
// channel and session debug output lands in the test report of the test that
// produced it.
package logtest

import (
	"context"
	"log/slog"
	"testing"
)

// New returns a debug-level logger bound to t.
func New(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(&handler{t: t})
}

type handler struct {
	t     *testing.T
	attrs []slog.Attr
}

func (h *handler) Enabled(context.Context, slog.Level) bool { return true }

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	line := r.Message
	for _, a := range h.attrs {
		line += " " + a.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		line += " " + a.String()
		return true
	})
	h.t.Log(line)
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{t: h.t, attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)}
}

func (h *handler) WithGroup(string) slog.Handler { return h }
