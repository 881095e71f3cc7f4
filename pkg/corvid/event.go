// event.go defines the transport-ready event and its wire encoding.

package corvid

import (
	"encoding/json"
	"time"
)

// Wire names of the independently optional interface payloads. These
// identifiers are part of the ingestion contract and must not change.
const (
	// MessageInterfaceKey carries the template/params message payload.
	MessageInterfaceKey = "sentry.interfaces.Message"

	// ExceptionInterfaceKey carries the exception type and value.
	ExceptionInterfaceKey = "sentry.interfaces.Exception"

	// StacktraceInterfaceKey carries the frame sequence.
	StacktraceInterfaceKey = "sentry.interfaces.Stacktrace"
)

// Event is the assembled, transport-ready representation of one record.
// All fields are populated by the handler before the sink handoff and
// are immutable afterwards.
type Event struct {
	// Identity fields

	// EventID is a unique identifier for this event (32 hex chars).
	EventID string

	// Timestamp is when the underlying record was produced.
	Timestamp time.Time

	// Checksum is a stable hash for grouping similar events.
	Checksum string

	// Record-derived scalars

	// Logger is the producing logger's name, copied verbatim.
	Logger string

	// Level is the record severity, copied verbatim.
	Level Level

	// Message is the fully interpolated display string.
	Message string

	// Culprit is the human-readable locator of where the event originated.
	Culprit string

	// Host context

	// ServerName is the hostname of the reporting machine.
	ServerName string

	// Platform identifies the producing runtime.
	Platform string

	// Attribute-derived mappings

	// Tags holds the record's tag mapping, copied verbatim.
	Tags map[string]string

	// Extra holds the rendered free-form metadata.
	Extra map[string]string

	// Interface payloads; each is independently optional. An event
	// carries at most one stacktrace and at most one exception, and an
	// exception always implies a stacktrace from its own traceback.

	// MessageInfo is present whenever the record has a message template.
	MessageInfo *MessageInfo

	// Exception describes the record's exception triple, if any.
	Exception *ExceptionInfo

	// Stacktrace is the resolved frame sequence, if any. Never attached
	// empty.
	Stacktrace *Trace
}

// MarshalJSON renders the flat wire mapping expected by the ingestion
// service: scalar fields at the top level, interface payloads under
// their contract keys, absent interfaces omitted entirely.
func (e Event) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"event_id": e.EventID,
		"logger":   e.Logger,
		"level":    int32(e.Level),
		"message":  e.Message,
	}
	if !e.Timestamp.IsZero() {
		m["timestamp"] = e.Timestamp.UTC().Format("2006-01-02T15:04:05.000000")
	}
	if e.Culprit != "" {
		m["culprit"] = e.Culprit
	}
	if e.ServerName != "" {
		m["server_name"] = e.ServerName
	}
	if e.Platform != "" {
		m["platform"] = e.Platform
	}
	if e.Checksum != "" {
		m["checksum"] = e.Checksum
	}
	if len(e.Tags) > 0 {
		m["tags"] = e.Tags
	}
	if len(e.Extra) > 0 {
		m["extra"] = e.Extra
	}
	if e.MessageInfo != nil {
		m[MessageInterfaceKey] = e.MessageInfo
	}
	if e.Exception != nil {
		m[ExceptionInterfaceKey] = e.Exception
	}
	if !e.Stacktrace.empty() {
		m[StacktraceInterfaceKey] = e.Stacktrace
	}
	return json.Marshal(m)
}
