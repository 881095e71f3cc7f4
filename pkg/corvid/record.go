// record.go defines the log record input consumed by the handler.

package corvid

import "time"

// Record is one discrete unit of log input, the observable shape of a
// logging framework's record. The handler reads it and never mutates it.
type Record struct {
	// Logger is the name of the logger that produced the record.
	Logger string

	// Level is the record's severity.
	Level Level

	// Message is the raw printf-style message template.
	Message string

	// Args holds the positional arguments for the template, in order.
	// May be empty.
	Args []any

	// Exc is the optional exception triple attached to the record.
	Exc *ExcInfo

	// Extra is the record's arbitrary attribute mapping. A fixed set of
	// keys ("stack", "tags", "data", "culprit") is intercepted as control
	// attributes; every other key passes through as extra metadata.
	Extra map[string]any

	// Call-site of the code that produced the record. Used as the culprit
	// fallback when no stacktrace is resolved for the event.

	// Module is the package path of the call site.
	Module string

	// Function is the function name of the call site.
	Function string

	// Line is the line number of the call site.
	Line int

	// Timestamp is when the record was produced. Zero means "now".
	Timestamp time.Time
}
