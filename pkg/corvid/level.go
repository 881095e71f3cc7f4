// level.go defines the ordered severity scale shared by records and events.

package corvid

import "fmt"

// Level is the severity of a record or event. Values follow the numeric
// scale of the ingestion contract, so they are ordered and comparable.
type Level int32

const (
	// LevelDebug is diagnostic output not normally reported.
	LevelDebug Level = 10

	// LevelInfo is routine operational information.
	LevelInfo Level = 20

	// LevelWarning indicates a non-fatal issue that may need attention.
	LevelWarning Level = 30

	// LevelError indicates a recoverable error that caused an operation to fail.
	LevelError Level = 40

	// LevelFatal indicates an unrecoverable error such as a panic.
	LevelFatal Level = 50
)

// String returns the lower-case name of the level. Unknown values render
// as their numeric form.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return fmt.Sprintf("level(%d)", int32(l))
	}
}

// ParseLevel converts a level name into a Level. It accepts the names
// produced by String and returns an error for anything else.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return 0, fmt.Errorf("corvid: unknown level %q", name)
	}
}
