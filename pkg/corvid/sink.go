// sink.go defines the Sink interface for assembled-event destinations.

package corvid

import "context"

// Sink is the transport collaborator that receives assembled events.
// Implementations must be safe for concurrent use. Delivery guarantees,
// batching and retries are entirely the sink's responsibility.
type Sink interface {
	// Write accepts one assembled event. Called once per handled record.
	Write(ctx context.Context, event Event) error

	// Flush ensures any buffered events are persisted.
	// For synchronous sinks, this may be a no-op.
	Flush(ctx context.Context) error

	// Close releases resources held by the sink.
	// After Close is called, Write and Flush should return errors.
	Close() error
}
