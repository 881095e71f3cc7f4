// Package corvid provides lightweight, pluggable capture of log records
// and errors as structured events for a Sentry-compatible ingestion
// service.
//
// corvid converts one log record at a time into a normalized event:
// it interpolates the record's message template, describes an attached
// exception, walks and filters stack frames, classifies the record's
// free-form attributes into tags, extra metadata and control keys, and
// derives a human-readable culprit. The assembled event is handed to a
// transport collaborator behind the Sink interface.
//
// # Core Components
//
// The library is organized around these concepts:
//
//   - Record: One unit of log input (template, level, args, optional exception, attributes)
//   - Event: The transport-ready representation with the wire interface payloads
//   - Handler: The single entry point that assembles events and hands them to a sink
//   - Sink: Destination for assembled events (memory, stderr, multi, noop)
//   - Trace: Frame sequences from either a traceback or the live call stack
//
// # Quick Start
//
// For framework-free usage:
//
//	handler, err := corvid.New(stderr.New())
//	if err != nil {
//	    ...
//	}
//	handler.Handle(ctx, corvid.Record{
//	    Logger:  "worker",
//	    Level:   corvid.LevelError,
//	    Message: "refresh failed for %s",
//	    Args:    []any{shard},
//	    Exc:     corvid.NewExcInfo(err),
//	})
//
// For log/slog integration, wrap the handler with slogbridge:
//
//	logger := slog.New(slogbridge.New(handler))
//
// # Design Principles
//
//   - One malformed attribute never prevents an event from being emitted:
//     formatting and rendering faults are downgraded to local fallbacks
//   - The sink handoff is fire-and-forget; delivery is the sink's problem
//   - No shared mutable state per emit: every call builds its own frames and event
package corvid
