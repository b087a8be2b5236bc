package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

const (
	ComponentKey = "component"
	ErrorKey     = "error"
)

// Error returns a slog.Attr for the provided error. The key will be ErrorKey.
func Error(e error) slog.Attr {
	return slog.Any(ErrorKey, e)
}

// indirectHandler is a small wrapper around a slog.Handler that allows swapping out the underlying handler on demand.
// Attributes and groups added before a sink is installed are remembered and replayed onto whatever handler is current
// when a record is handled, so package-level loggers keep their component attribute.
type indirectHandler struct {
	h *atomic.Pointer[slog.Handler]

	with []func(slog.Handler) slog.Handler
}

func (i *indirectHandler) current() slog.Handler {
	h := i.h.Load()
	if h == nil {
		return nil
	}

	result := *h
	for _, w := range i.with {
		result = w(result)
	}

	return result
}

func (i *indirectHandler) Enabled(ctx context.Context, level slog.Level) bool {
	h := i.h.Load()
	if h == nil {
		return false
	}

	return (*h).Enabled(ctx, level)
}

func (i *indirectHandler) Handle(ctx context.Context, record slog.Record) error {
	h := i.current()
	if h == nil {
		return nil
	}

	return h.Handle(ctx, record)
}

func (i *indirectHandler) derive(w func(slog.Handler) slog.Handler) *indirectHandler {
	with := make([]func(slog.Handler) slog.Handler, len(i.with), len(i.with)+1)
	copy(with, i.with)

	return &indirectHandler{h: i.h, with: append(with, w)}
}

func (i *indirectHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return i.derive(func(h slog.Handler) slog.Handler {
		return h.WithAttrs(attrs)
	})
}

func (i *indirectHandler) WithGroup(name string) slog.Handler {
	return i.derive(func(h slog.Handler) slog.Handler {
		return h.WithGroup(name)
	})
}

var _ slog.Handler = &indirectHandler{}

var (
	sink = &indirectHandler{h: &atomic.Pointer[slog.Handler]{}}
)

// To updates all slog.Logger objects used internally by hadiscovery to write logs to the provided slog.Handler. By
// default, log values will be discarded unless To is called at least once with a non-discarding slog.Handler. Passing
// nil discards logs again.
func To(h slog.Handler) {
	if h == nil {
		sink.h.Store(nil)
		return
	}

	sink.h.Store(&h)
}

// ForComponent constructs a slog.Logger for the specified component (which is stored in an attribute with the key
// ComponentKey).
func ForComponent(component string) *slog.Logger {
	return slog.New(sink).With(slog.String(ComponentKey, component))
}
