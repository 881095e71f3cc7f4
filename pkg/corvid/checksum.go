// checksum.go generates stable hashes for grouping similar events.

package corvid

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// checksumFrameCount bounds how many innermost frames feed the checksum.
const checksumFrameCount = 3

// eventChecksum generates a grouping hash for an event. The hash is
// built from stable fields only:
//
//   - exception type and culprit
//   - the innermost frames' module.function pairs
//   - the raw message template as a last resort
//
// Line numbers, rendered values, timestamps and event IDs never feed the
// checksum, so recompiled or relocated code keeps its grouping.
func eventChecksum(e Event) string {
	var parts []string
	if e.Exception != nil {
		parts = append(parts, e.Exception.Type)
	}
	if e.Culprit != "" {
		parts = append(parts, e.Culprit)
	}
	parts = append(parts, checksumFrames(e.Stacktrace)...)

	if len(parts) == 0 {
		if e.MessageInfo != nil {
			parts = append(parts, e.MessageInfo.Message)
		} else {
			parts = append(parts, e.Message)
		}
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:16])
}

// checksumFrames lists the innermost module.function pairs, innermost
// first, up to checksumFrameCount entries.
func checksumFrames(t *Trace) []string {
	if t.empty() {
		return nil
	}
	var parts []string
	for i := len(t.Frames) - 1; i >= 0 && len(parts) < checksumFrameCount; i-- {
		f := t.Frames[i]
		if f.Function == "" {
			continue
		}
		if f.Module != "" {
			parts = append(parts, f.Module+"."+f.Function)
		} else {
			parts = append(parts, f.Function)
		}
	}
	return parts
}
