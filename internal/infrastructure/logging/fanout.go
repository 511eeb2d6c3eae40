package logging

import (
	"context"
	"errors"
	"log/slog"
)

// Sink is one destination of a fanout handler. Records below MinLevel are
// not handed to it, whatever the handler's own level says.
type Sink struct {
	Handler  slog.Handler
	MinLevel slog.Leveler
}

// FanoutHandler sends each record to every sink whose level admits it, so the
// console can stay at info while the rotated file keeps debug (or the reverse).
type FanoutHandler struct {
	sinks []Sink
}

func NewFanoutHandler(sinks ...Sink) *FanoutHandler {
	return &FanoutHandler{sinks: sinks}
}

func (s Sink) admits(ctx context.Context, level slog.Level) bool {
	if s.MinLevel != nil && level < s.MinLevel.Level() {
		return false
	}
	return s.Handler.Enabled(ctx, level)
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range h.sinks {
		if s.admits(ctx, level) {
			return true
		}
	}
	return false
}

// Handle writes to every admitting sink and joins their errors.
func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	var errs []error
	for _, s := range h.sinks {
		if !s.admits(ctx, r.Level) {
			continue
		}
		if err := s.Handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(sh slog.Handler) slog.Handler { return sh.WithAttrs(attrs) })
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(sh slog.Handler) slog.Handler { return sh.WithGroup(name) })
}

func (h *FanoutHandler) derive(fn func(slog.Handler) slog.Handler) *FanoutHandler {
	sinks := make([]Sink, len(h.sinks))
	for i, s := range h.sinks {
		sinks[i] = Sink{Handler: fn(s.Handler), MinLevel: s.MinLevel}
	}
	return &FanoutHandler{sinks: sinks}
}
