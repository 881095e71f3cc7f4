// runtime_info.go fills host and identity defaults on assembled events.

package corvid

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// platformName identifies this SDK's runtime on the wire.
const platformName = "go"

// newEventID returns a fresh 32-character hex event identifier.
func newEventID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// applyDefaults fills identity and host fields that the record itself
// does not carry. serverName comes from configuration and falls back to
// the machine hostname; an empty hostname is acceptable.
func applyDefaults(e *Event, serverName string) {
	if e.EventID == "" {
		e.EventID = newEventID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if e.Platform == "" {
		e.Platform = platformName
	}
	if e.ServerName == "" {
		e.ServerName = serverName
	}
	if e.ServerName == "" {
		e.ServerName, _ = os.Hostname()
	}
}
