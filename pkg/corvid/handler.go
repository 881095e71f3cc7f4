// handler.go provides the record entry point and the event assembler.

package corvid

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Config holds the handler's tunable behavior. Zero values are filled
// with defaults by New; the populated struct is validated before use.
type Config struct {
	// IgnorePrefixes lists module-path prefixes removed from ambient
	// stack captures. The SDK's own package path is always included.
	IgnorePrefixes []string `validate:"dive,required"`

	// ContextLines is the number of source lines loaded around each
	// captured frame. Zero disables source context.
	ContextLines int `validate:"gte=0,lte=25"`

	// ServerName overrides the reported hostname.
	ServerName string

	// MinLevel drops records below this severity before assembly.
	MinLevel Level `validate:"gte=0"`
}

type handlerConfig struct {
	Config
	log          zerolog.Logger
	sanitizerCfg *SanitizerConfig
}

// Option configures a Handler.
type Option func(*handlerConfig)

// WithIgnorePrefixes adds module-path prefixes treated as integration
// code for frame filtering, e.g. an application's own logging wrapper.
func WithIgnorePrefixes(prefixes ...string) Option {
	return func(c *handlerConfig) {
		c.IgnorePrefixes = append(c.IgnorePrefixes, prefixes...)
	}
}

// WithContextLines enables loading a window of source lines around each
// captured frame.
func WithContextLines(n int) Option {
	return func(c *handlerConfig) {
		c.ContextLines = n
	}
}

// WithServerName overrides the hostname reported on events.
func WithServerName(name string) Option {
	return func(c *handlerConfig) {
		c.ServerName = name
	}
}

// WithMinLevel drops records below the given severity.
func WithMinLevel(level Level) Option {
	return func(c *handlerConfig) {
		c.MinLevel = level
	}
}

// WithLogger sets the zerolog logger used for the SDK's own diagnostics
// (swallowed faults, sink errors). Default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *handlerConfig) {
		c.log = log
	}
}

// WithSanitizer enables the redaction pass with the given configuration.
func WithSanitizer(cfg SanitizerConfig) Option {
	return func(c *handlerConfig) {
		c.sanitizerCfg = &cfg
	}
}

// Handler converts records into events and hands them to its sink.
// Safe for concurrent use; each Handle call builds its own state.
type Handler struct {
	sink      Sink
	cfg       Config
	log       zerolog.Logger
	sanitizer *Sanitizer
	closed    atomic.Bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New creates a Handler sending events to client. The client must
// implement Sink; anything else fails fast with a descriptive error, as
// does an invalid configuration. These are the handler's only
// user-visible failure modes.
func New(client any, opts ...Option) (*Handler, error) {
	sink, ok := client.(Sink)
	if !ok || sink == nil {
		return nil, fmt.Errorf("corvid: client of type %T does not implement corvid.Sink", client)
	}

	cfg := handlerConfig{
		Config: Config{
			IgnorePrefixes: []string{sdkPackagePath},
		},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate.Struct(cfg.Config); err != nil {
		return nil, fmt.Errorf("corvid: invalid handler config: %w", err)
	}

	h := &Handler{
		sink: sink,
		cfg:  cfg.Config,
		log:  cfg.log,
	}
	if cfg.sanitizerCfg != nil {
		sanitizer, err := NewSanitizer(*cfg.sanitizerCfg)
		if err != nil {
			return nil, fmt.Errorf("corvid: invalid sanitizer config: %w", err)
		}
		h.sanitizer = sanitizer
	}
	return h, nil
}

// Handle converts one record into an event and hands it to the sink.
// The handoff is fire-and-forget: sink errors are logged through the
// diagnostics logger and never surfaced to the caller.
func (h *Handler) Handle(ctx context.Context, rec Record) {
	if h.closed.Load() || rec.Level < h.cfg.MinLevel {
		return
	}

	event := h.assemble(ctx, rec)
	if err := h.sink.Write(ctx, event); err != nil {
		h.log.Debug().Err(err).Str("event_id", event.EventID).Msg("sink write failed")
	}
}

// assemble merges the record's derived pieces into one event under the
// documented precedence rules.
func (h *Handler) assemble(ctx context.Context, rec Record) Event {
	attrs := classifyAttrs(rec.Extra)

	// The message interface rides along whenever a template exists,
	// independent of exception presence.
	var msgInfo *MessageInfo
	display := rec.Message
	if rec.Message != "" {
		info, text := formatMessage(rec.Message, rec.Args)
		msgInfo, display = &info, text
	}

	// Stacktrace precedence: the exception's own traceback wins; without
	// an exception the record's explicit or requested capture applies.
	var exception *ExceptionInfo
	var trace *Trace
	switch {
	case rec.Exc != nil:
		exception, trace = describeException(rec.Exc, h.cfg.ContextLines)
		if trace.empty() {
			// Hand-built triple without frames: fall back to the live
			// stack so an exception never ships without a stacktrace.
			trace = CaptureTrace(2, h.cfg.ContextLines).filter(h.cfg.IgnorePrefixes)
		}
	case attrs.explicitStack != nil:
		trace = attrs.explicitStack
	case attrs.stackWanted:
		trace = CaptureTrace(2, h.cfg.ContextLines).filter(h.cfg.IgnorePrefixes)
	}
	if trace.empty() {
		trace = nil
	}

	culprit := attrs.culprit
	if culprit == "" {
		culprit = resolveCulprit(rec, trace)
	}

	event := Event{
		Timestamp:   rec.Timestamp,
		Logger:      rec.Logger,
		Level:       rec.Level,
		Message:     display,
		Culprit:     culprit,
		Tags:        h.mergeTags(ctx, attrs.tags),
		Extra:       attrs.extra,
		MessageInfo: msgInfo,
		Exception:   exception,
		Stacktrace:  trace,
	}
	applyDefaults(&event, h.cfg.ServerName)
	if h.sanitizer != nil {
		h.sanitizer.sanitizeEvent(&event)
	}
	event.Checksum = eventChecksum(event)
	return event
}

// mergeTags combines context-scoped tags with the record's own, the
// record winning per key.
func (h *Handler) mergeTags(ctx context.Context, recTags map[string]string) map[string]string {
	ctxTags, ok := TagsFromContext(ctx)
	if !ok {
		return recTags
	}
	merged := make(map[string]string, len(ctxTags)+len(recTags))
	for k, v := range ctxTags {
		merged[k] = v
	}
	for k, v := range recTags {
		merged[k] = v
	}
	return merged
}

// Flush delegates to the sink.
func (h *Handler) Flush(ctx context.Context) error {
	return h.sink.Flush(ctx)
}

// Close stops the handler and closes the sink. Records handled after
// Close are dropped.
func (h *Handler) Close() error {
	h.closed.Store(true)
	return h.sink.Close()
}
