// recover.go provides a helper for reporting panics as fatal events.
// Use it in HTTP handlers, goroutines, or other code outside a logging
// framework's reach.

package corvid

import (
	"context"
	"fmt"
)

// Recover captures a panic and emits it through the handler as a fatal
// record with an exception triple. Recover does NOT re-panic.
//
// Recover calls recover internally, so it must be deferred directly:
//
//	func worker(ctx context.Context) {
//	    defer corvid.Recover(ctx, handler, "worker")
//	    // code that might panic
//	}
//
// Wrapping it in another deferred function breaks the recover chain and
// the panic will continue unwinding unreported.
func Recover(ctx context.Context, h *Handler, logger string) {
	r := recover()
	if r == nil {
		return
	}

	err := recoveredError(r)
	h.Handle(ctx, Record{
		Logger:  logger,
		Level:   LevelFatal,
		Message: errorValue(err),
		Exc:     newExcInfoSkip(err, 1),
	})
}

// recoveredError normalizes a recovered panic value into an error.
func recoveredError(recovered any) error {
	switch v := recovered.(type) {
	case error:
		return v
	default:
		return fmt.Errorf("%v", v)
	}
}
