package slogbridge

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidhq/corvid-go/pkg/corvid"
	"github.com/corvidhq/corvid-go/pkg/corvid/sinks/memory"
)

type declineError struct{}

func (declineError) Error() string { return "card declined" }

func newBridge(t *testing.T, opts ...Option) (*Bridge, *memory.Sink) {
	t.Helper()
	sink := memory.New()
	handler, err := corvid.New(sink)
	require.NoError(t, err)
	return New(handler, opts...), sink
}

func singleEvent(t *testing.T, sink *memory.Sink) corvid.Event {
	t.Helper()
	events := sink.Events()
	require.Len(t, events, 1)
	return events[0]
}

func TestEnabled_DefaultsToWarn(t *testing.T) {
	bridge, _ := newBridge(t)
	ctx := context.Background()

	assert.False(t, bridge.Enabled(ctx, slog.LevelDebug))
	assert.False(t, bridge.Enabled(ctx, slog.LevelInfo))
	assert.True(t, bridge.Enabled(ctx, slog.LevelWarn))
	assert.True(t, bridge.Enabled(ctx, slog.LevelError))
}

func TestEnabled_CustomThreshold(t *testing.T) {
	bridge, _ := newBridge(t, WithLevel(slog.LevelDebug))

	assert.True(t, bridge.Enabled(context.Background(), slog.LevelDebug))
}

func TestHandle_ConvertsRecord(t *testing.T) {
	bridge, sink := newBridge(t)
	logger := slog.New(bridge)

	logger.Warn("disk almost full", "free_mb", 512)

	event := singleEvent(t, sink)
	assert.Equal(t, "slog", event.Logger)
	assert.Equal(t, corvid.LevelWarning, event.Level)
	assert.Equal(t, "disk almost full", event.Message)
	assert.Equal(t, "512", event.Extra["free_mb"])
	assert.False(t, event.Timestamp.IsZero())
	// The record's call site is this test, so the culprit names it.
	assert.Contains(t, event.Culprit, "TestHandle_ConvertsRecord")
}

func TestHandle_LoggerName(t *testing.T) {
	bridge, sink := newBridge(t, WithLoggerName("jobs"))
	logger := slog.New(bridge)

	logger.Error("run failed")

	assert.Equal(t, "jobs", singleEvent(t, sink).Logger)
}

func TestHandle_ErrorAttrBecomesException(t *testing.T) {
	bridge, sink := newBridge(t)
	logger := slog.New(bridge)

	logger.Error("charge failed", "err", declineError{})

	event := singleEvent(t, sink)
	require.NotNil(t, event.Exception)
	assert.Equal(t, "declineError", event.Exception.Type)
	assert.Equal(t, "card declined", event.Exception.Value)
	// slog records carry no raise-site stack; the exception is anchored
	// at the logging call.
	require.NotNil(t, event.Stacktrace)
	require.Len(t, event.Stacktrace.Frames, 1)
	assert.Equal(t, "TestHandle_ErrorAttrBecomesException", event.Stacktrace.Frames[0].Function)
	// The consumed attribute does not also land in the mapping.
	assert.NotContains(t, event.Extra, "err")
}

func TestHandle_FirstErrorAttrWins(t *testing.T) {
	bridge, sink := newBridge(t)
	logger := slog.New(bridge)

	logger.Error("two faults", "first", declineError{}, "second", context.Canceled)

	event := singleEvent(t, sink)
	require.NotNil(t, event.Exception)
	assert.Equal(t, "card declined", event.Exception.Value)
	assert.Equal(t, "context canceled", event.Extra["second"])
}

func TestWithAttrs_AppliedToEveryRecord(t *testing.T) {
	bridge, sink := newBridge(t)
	logger := slog.New(bridge).With("release", "1.4.2")

	logger.Warn("first")
	logger.Warn("second")

	events := sink.Events()
	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, `"1.4.2"`, event.Extra["release"])
	}
}

func TestWithGroup_QualifiesKeys(t *testing.T) {
	bridge, sink := newBridge(t)
	logger := slog.New(bridge).WithGroup("request").WithGroup("auth")

	logger.Warn("denied", "user", "alice")

	assert.Equal(t, `"alice"`, singleEvent(t, sink).Extra["request.auth.user"])
}

func TestHandle_GroupAttr(t *testing.T) {
	bridge, sink := newBridge(t)
	logger := slog.New(bridge)

	logger.Warn("slow query", slog.Group("db", "table", "orders", "rows", 10000))

	event := singleEvent(t, sink)
	assert.Equal(t, `"orders"`, event.Extra["db.table"])
	assert.Equal(t, "10000", event.Extra["db.rows"])
}

func TestWithAttrs_DoesNotMutateReceiver(t *testing.T) {
	bridge, sink := newBridge(t)
	derived := bridge.WithAttrs([]slog.Attr{slog.String("shard", "7")})

	// Zero PC: plain records without call-site information still convert.
	require.NoError(t, bridge.Handle(context.Background(), slog.NewRecord(
		time.Now(), slog.LevelWarn, "plain", 0)))
	require.NoError(t, derived.Handle(context.Background(), slog.NewRecord(
		time.Now(), slog.LevelWarn, "sharded", 0)))

	events := sink.Events()
	require.Len(t, events, 2)
	assert.NotContains(t, events[0].Extra, "shard")
	assert.Equal(t, `"7"`, events[1].Extra["shard"])
}

func TestMapLevel(t *testing.T) {
	cases := []struct {
		in   slog.Level
		want corvid.Level
	}{
		{slog.LevelDebug, corvid.LevelDebug},
		{slog.LevelDebug - 4, corvid.LevelDebug},
		{slog.LevelInfo, corvid.LevelInfo},
		{slog.LevelInfo + 1, corvid.LevelInfo},
		{slog.LevelWarn, corvid.LevelWarning},
		{slog.LevelError, corvid.LevelError},
		{slog.LevelError + 8, corvid.LevelError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mapLevel(tc.in), "slog level %v", tc.in)
	}
}
