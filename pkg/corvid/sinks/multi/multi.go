// Package multi provides a sink that fans out to multiple sinks.
// All sinks receive all events; errors are aggregated.
package multi

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/corvidhq/corvid-go/pkg/corvid"
)

// multiSink fans out to multiple sinks concurrently.
type multiSink struct {
	sinks []corvid.Sink
}

// New creates a sink that writes to multiple sinks. All sinks receive
// all events, even when some return errors; the errors are aggregated
// via errors.Join.
func New(sinks ...corvid.Sink) corvid.Sink {
	return &multiSink{sinks: sinks}
}

// Write sends the event to all sinks in parallel, collecting any errors.
func (s *multiSink) Write(ctx context.Context, event corvid.Event) error {
	return s.fanOut(func(sink corvid.Sink) error {
		return sink.Write(ctx, event)
	})
}

// Flush calls Flush on all sinks, collecting any errors.
func (s *multiSink) Flush(ctx context.Context) error {
	return s.fanOut(func(sink corvid.Sink) error {
		return sink.Flush(ctx)
	})
}

// Close calls Close on all sinks, collecting any errors.
func (s *multiSink) Close() error {
	return s.fanOut(corvid.Sink.Close)
}

// fanOut runs op against every sink concurrently. Per-sink errors land
// in their own slot so one failure never short-circuits the others.
func (s *multiSink) fanOut(op func(corvid.Sink) error) error {
	errs := make([]error, len(s.sinks))
	var g errgroup.Group
	for i, sink := range s.sinks {
		i, sink := i, sink
		g.Go(func() error {
			errs[i] = op(sink)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
