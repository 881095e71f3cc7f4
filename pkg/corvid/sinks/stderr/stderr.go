// Package stderr provides a sink that prints events to stderr in
// human-readable form. Useful for development and debugging.
package stderr

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/corvidhq/corvid-go/pkg/corvid"
)

// Option configures the stderr sink.
type Option func(*config)

type config struct {
	out     io.Writer
	verbose bool
}

// WithVerbose enables full event details including frames and extra
// metadata.
func WithVerbose() Option {
	return func(c *config) {
		c.verbose = true
	}
}

// WithWriter redirects output, mainly for tests.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

type stderrSink struct {
	out     io.Writer
	verbose bool
}

// New creates a sink that writes to stderr.
func New(opts ...Option) corvid.Sink {
	cfg := &config{out: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}
	return &stderrSink{out: cfg.out, verbose: cfg.verbose}
}

// Write formats and outputs the event.
func (s *stderrSink) Write(ctx context.Context, event corvid.Event) error {
	// Format: [CORVID] <timestamp> <LEVEL> <logger> <culprit>
	parts := []string{
		fmt.Sprintf("[CORVID] %s %s", event.Timestamp.Format("2006-01-02T15:04:05Z07:00"), strings.ToUpper(event.Level.String())),
	}
	if event.Logger != "" {
		parts = append(parts, event.Logger)
	}
	if event.Culprit != "" {
		parts = append(parts, fmt.Sprintf("(%s)", event.Culprit))
	}
	fmt.Fprintln(s.out, strings.Join(parts, " "))

	if event.Message != "" {
		fmt.Fprintf(s.out, "        Message: %s\n", event.Message)
	}
	if event.Exception != nil {
		fmt.Fprintf(s.out, "        Exception: %s: %s\n", event.Exception.Type, event.Exception.Value)
	}
	if event.Checksum != "" {
		fmt.Fprintf(s.out, "        Checksum: %s\n", event.Checksum)
	}

	if !s.verbose {
		return nil
	}

	for _, key := range sortedKeys(event.Tags) {
		fmt.Fprintf(s.out, "        Tag %s=%s\n", key, event.Tags[key])
	}
	for _, key := range sortedKeys(event.Extra) {
		fmt.Fprintf(s.out, "        Extra %s=%s\n", key, event.Extra[key])
	}
	if event.Stacktrace != nil {
		fmt.Fprintf(s.out, "        Stacktrace:\n")
		for _, f := range event.Stacktrace.Frames {
			fmt.Fprintf(s.out, "          %s.%s (%s:%d)\n", f.Module, f.Function, f.AbsPath, f.Lineno)
		}
	}
	return nil
}

// Flush is a no-op for the stderr sink.
func (s *stderrSink) Flush(ctx context.Context) error {
	return nil
}

// Close is a no-op for the stderr sink.
func (s *stderrSink) Close() error {
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
