// Package slogbridge adapts a corvid.Handler to the standard library's
// log/slog framework: every slog record above the threshold becomes one
// captured event.
package slogbridge

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/corvidhq/corvid-go/pkg/corvid"
)

// Option configures the bridge.
type Option func(*config)

type config struct {
	logger string
	level  slog.Leveler
}

// WithLoggerName sets the logger name stamped on records (default "slog").
func WithLoggerName(name string) Option {
	return func(c *config) {
		c.logger = name
	}
}

// WithLevel sets the minimum slog level the bridge reports (default
// slog.LevelWarn; capturing every Info line is rarely what you want on
// an error-reporting pipeline).
func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		c.level = level
	}
}

// Bridge is a slog.Handler feeding a corvid.Handler. Bridges are
// immutable; WithAttrs and WithGroup return modified copies.
type Bridge struct {
	handler *corvid.Handler
	logger  string
	level   slog.Leveler
	attrs   []slog.Attr
	groups  []string
}

// New wraps a corvid handler as a slog.Handler.
func New(handler *corvid.Handler, opts ...Option) *Bridge {
	cfg := &config{
		logger: "slog",
		level:  slog.LevelWarn,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Bridge{handler: handler, logger: cfg.logger, level: cfg.level}
}

// Enabled reports whether records at the given level are captured.
func (b *Bridge) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= b.level.Level()
}

// Handle converts the slog record into a corvid record and emits it.
// Always returns nil: capture faults never propagate into the caller's
// logging path.
func (b *Bridge) Handle(ctx context.Context, r slog.Record) error {
	rec := corvid.Record{
		Logger:    b.logger,
		Level:     mapLevel(r.Level),
		Message:   r.Message,
		Timestamp: r.Time,
		Extra:     make(map[string]any),
	}

	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		rec.Module, rec.Function = corvid.SplitFunction(frame.Function)
		rec.Line = frame.Line
	}

	for _, a := range b.attrs {
		b.addAttr(&rec, a, b.groups)
	}
	r.Attrs(func(a slog.Attr) bool {
		b.addAttr(&rec, a, b.groups)
		return true
	})

	b.handler.Handle(ctx, rec)
	return nil
}

// addAttr places one slog attribute on the record. An error value
// becomes the record's exception triple (first one wins); everything
// else lands in the attribute mapping under its group-qualified key.
func (b *Bridge) addAttr(rec *corvid.Record, a slog.Attr, groups []string) {
	if a.Value.Kind() == slog.KindGroup {
		nested := append(append([]string(nil), groups...), a.Key)
		for _, ga := range a.Value.Group() {
			b.addAttr(rec, ga, nested)
		}
		return
	}

	value := a.Value.Resolve().Any()
	if err, ok := value.(error); ok && rec.Exc == nil {
		rec.Exc = &corvid.ExcInfo{Err: err, Trace: b.callSiteTrace(rec)}
		return
	}

	key := a.Key
	for i := len(groups) - 1; i >= 0; i-- {
		key = groups[i] + "." + key
	}
	rec.Extra[key] = value
}

// callSiteTrace builds a single-frame traceback from the record's call
// site. slog records do not carry the raise-site stack, so the exception
// is anchored at the logging call instead.
func (b *Bridge) callSiteTrace(rec *corvid.Record) *corvid.Trace {
	if rec.Module == "" && rec.Function == "" {
		return nil
	}
	return &corvid.Trace{Frames: []corvid.Frame{{
		Module:   rec.Module,
		Function: rec.Function,
		Lineno:   rec.Line,
	}}}
}

// WithAttrs returns a bridge that includes the given attributes on every
// record.
func (b *Bridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	b2 := *b
	b2.attrs = append(append([]slog.Attr(nil), b.attrs...), attrs...)
	return &b2
}

// WithGroup returns a bridge that qualifies subsequent attribute keys
// with name.
func (b *Bridge) WithGroup(name string) slog.Handler {
	b2 := *b
	b2.groups = append(append([]string(nil), b.groups...), name)
	return &b2
}

// mapLevel buckets a slog level onto the event severity scale.
func mapLevel(level slog.Level) corvid.Level {
	switch {
	case level >= slog.LevelError:
		return corvid.LevelError
	case level >= slog.LevelWarn:
		return corvid.LevelWarning
	case level >= slog.LevelInfo:
		return corvid.LevelInfo
	default:
		return corvid.LevelDebug
	}
}
