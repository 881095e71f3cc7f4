// culprit.go derives the human-readable "where it happened" locator.

package corvid

import "fmt"

// resolveCulprit derives "<logger-or-module> in <function>" from the
// innermost frame of the resolved stacktrace, falling back to the
// record's own call site when no stacktrace exists. The left side is the
// logger name when the record has one, otherwise the frame's module.
//
// An explicit culprit attribute takes precedence over this; that is
// enforced by the assembler, not here.
func resolveCulprit(rec Record, trace *Trace) string {
	if frame, ok := trace.last(); ok {
		where := rec.Logger
		if where == "" {
			where = frame.Module
		}
		return fmt.Sprintf("%s in %s", where, frame.Function)
	}

	where := rec.Logger
	if where == "" {
		where = rec.Module
	}
	if where == "" && rec.Function == "" {
		return ""
	}
	return fmt.Sprintf("%s in %s", where, rec.Function)
}
