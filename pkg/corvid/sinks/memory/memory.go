// Package memory provides a sink that retains events in memory.
// Useful as the capturing collaborator in tests and for local tooling
// that inspects assembled events before wiring a real transport.
package memory

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/atomic"

	"github.com/corvidhq/corvid-go/pkg/corvid"
)

// ErrClosed is returned by Write and Flush after Close.
var ErrClosed = errors.New("memory sink is closed")

// Sink retains every written event. Safe for concurrent use.
type Sink struct {
	mu     sync.Mutex
	events []corvid.Event
	closed atomic.Bool
}

// New creates an empty capturing sink.
func New() *Sink {
	return &Sink{}
}

// Write appends the event to the retained slice.
func (s *Sink) Write(ctx context.Context, event corvid.Event) error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Flush is a no-op for the in-memory sink.
func (s *Sink) Flush(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return nil
}

// Close marks the sink closed. Retained events stay readable.
func (s *Sink) Close() error {
	s.closed.Store(true)
	return nil
}

// Events returns a copy of the retained events in write order.
func (s *Sink) Events() []corvid.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]corvid.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Reset discards the retained events.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
