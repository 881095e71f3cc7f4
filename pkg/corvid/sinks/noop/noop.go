// Package noop provides a no-operation sink that discards all events.
// Useful for testing and for disabling event capture.
package noop

import (
	"context"

	"github.com/corvidhq/corvid-go/pkg/corvid"
)

// noopSink discards all events.
type noopSink struct{}

// New creates a sink that discards all events.
// All methods return nil and perform no operations.
func New() corvid.Sink {
	return &noopSink{}
}

// Write discards the event and returns nil.
func (s *noopSink) Write(ctx context.Context, event corvid.Event) error {
	return nil
}

// Flush is a no-op and returns nil.
func (s *noopSink) Flush(ctx context.Context) error {
	return nil
}

// Close is a no-op and returns nil.
func (s *noopSink) Close() error {
	return nil
}
