// message.go builds the structured message interface for an event.

package corvid

import (
	"fmt"
	"regexp"
)

// MessageInfo is the structured message payload: the raw template plus
// the canonical display rendering of each positional argument.
type MessageInfo struct {
	// Message is the raw, uninterpolated template.
	Message string `json:"message"`

	// Params holds the rendered positional arguments, in order.
	Params []string `json:"params"`
}

// formatMessage builds the message interface and the interpolated
// display string for a template and its positional arguments.
//
// Interpolation failures are swallowed: when substitution produces a
// fmt error marker the raw template is used as the display string, so a
// bad format verb never prevents the event from being emitted.
func formatMessage(template string, args []any) (MessageInfo, string) {
	info := MessageInfo{
		Message: template,
		Params:  renderArgs(args),
	}
	if len(args) == 0 {
		return info, template
	}

	display := fmt.Sprintf(template, args...)
	if fmtFaultMarker.MatchString(display) {
		display = template
	}
	return info, display
}

// fmt reports bad verbs, missing args and extra args inline rather than
// as an error value. Its markers are always "%!" plus an optional verb
// and an opening paren ("%!d(string=x)", "%!(EXTRA ...)", "%!(NOVERB)"),
// so a substituted argument that merely contains "%!" is not a fault.
var fmtFaultMarker = regexp.MustCompile(`%![a-zA-Z]?\(`)
