// render.go implements the canonical non-throwing display rendering used
// for message params, extra metadata values and frame variables.

package corvid

import (
	"fmt"
	"strconv"
)

// unrenderable is the placeholder for values whose rendering panicked.
const unrenderable = "<unrenderable>"

// renderValue renders an arbitrary value to its canonical display string.
// Strings render quoted so textual literals stay distinguishable from
// other types on the wire; everything else renders through fmt's default
// formatting. The contract is non-throwing: a panicking String, Error or
// Format implementation yields the unrenderable placeholder instead.
func renderValue(v any) (out string) {
	defer func() {
		if recover() != nil {
			out = unrenderable
		}
	}()

	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(val)
	case error:
		// Call Error directly so a panic is caught here rather than
		// swallowed into fmt's %!v(PANIC=...) notation.
		return val.Error()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// renderArgs renders a positional argument list in order. The result is
// never nil so an empty params list serializes as an empty sequence.
func renderArgs(args []any) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, renderValue(a))
	}
	return out
}
