// sanitize.go implements optional credential redaction applied to events
// before the sink handoff.

package corvid

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// redacted replaces values that matched a sensitive pattern.
const redacted = "[REDACTED]"

// SanitizerConfig controls the redaction pass.
type SanitizerConfig struct {
	// KeyPatterns lists case-insensitive substrings; extra-metadata and
	// tag keys containing one have their value replaced entirely.
	KeyPatterns []string

	// ValuePatterns lists additional regexes scrubbed out of the message
	// and metadata values. Invalid patterns fail handler construction.
	ValuePatterns []string

	// MaxFieldSize truncates message and metadata values longer than
	// this many bytes. Zero means no limit.
	MaxFieldSize int
}

// DefaultSanitizerConfig returns production-safe defaults.
func DefaultSanitizerConfig() SanitizerConfig {
	return SanitizerConfig{
		KeyPatterns:  []string{"password", "passwd", "secret", "token", "credential", "api_key", "apikey"},
		MaxFieldSize: 4096,
	}
}

// Built-in value patterns, compiled once.
var builtinValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password|passwd)[=:\s]+['"]?[^\s'",]+['"]?`),
	regexp.MustCompile(`(?i)bearer\s+[\w\-.~+/]+=*`),
	regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`), // card numbers
}

// Sanitizer redacts sensitive data from assembled events. It never drops
// an event; on any doubt the value is replaced instead.
type Sanitizer struct {
	cfg      SanitizerConfig
	patterns []*regexp.Regexp
}

// NewSanitizer compiles the configured patterns. A malformed value
// pattern is a construction-time error.
func NewSanitizer(cfg SanitizerConfig) (*Sanitizer, error) {
	s := &Sanitizer{cfg: cfg}
	s.patterns = append(s.patterns, builtinValuePatterns...)
	for _, p := range cfg.ValuePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		s.patterns = append(s.patterns, re)
	}
	return s, nil
}

// sanitizeEvent applies redaction in place to the event's message,
// metadata, tags and frame variables.
func (s *Sanitizer) sanitizeEvent(e *Event) {
	e.Message = s.scrub(e.Message)
	if e.MessageInfo != nil {
		for i, p := range e.MessageInfo.Params {
			e.MessageInfo.Params[i] = s.scrub(p)
		}
	}
	if e.Exception != nil {
		e.Exception.Value = s.scrub(e.Exception.Value)
	}
	s.sanitizeMap(e.Extra)
	s.sanitizeMap(e.Tags)
	if !e.Stacktrace.empty() {
		for _, f := range e.Stacktrace.Frames {
			s.sanitizeMap(f.Vars)
		}
	}
}

// sanitizeMap redacts values under sensitive keys and scrubs the rest.
func (s *Sanitizer) sanitizeMap(m map[string]string) {
	for key, value := range m {
		if s.sensitiveKey(key) {
			m[key] = redacted
			continue
		}
		m[key] = s.scrub(value)
	}
}

func (s *Sanitizer) sensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, p := range s.cfg.KeyPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func (s *Sanitizer) scrub(value string) string {
	for _, re := range s.patterns {
		value = re.ReplaceAllString(value, redacted)
	}
	if s.cfg.MaxFieldSize > 0 && len(value) > s.cfg.MaxFieldSize {
		// Back off to a rune boundary so the cut never produces
		// invalid UTF-8.
		cut := s.cfg.MaxFieldSize
		for cut > 0 && !utf8.RuneStart(value[cut]) {
			cut--
		}
		value = value[:cut]
	}
	return value
}
