package stderr

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidhq/corvid-go/pkg/corvid"
)

func testEvent() corvid.Event {
	return corvid.Event{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Logger:    "billing",
		Level:     corvid.LevelError,
		Message:   "charge failed",
		Culprit:   "billing in chargeCard",
		Checksum:  "abc123",
		Tags:      map[string]string{"region": "eu"},
		Extra:     map[string]string{"invoice": "1042"},
		Exception: &corvid.ExceptionInfo{Type: "DeclineError", Value: "card declined"},
		Stacktrace: &corvid.Trace{Frames: []corvid.Frame{
			{Module: "app/billing", Function: "chargeCard", AbsPath: "/src/billing.go", Lineno: 40},
		}},
	}
}

func TestWrite_CompactOutput(t *testing.T) {
	var buf bytes.Buffer
	sink := New(WithWriter(&buf))

	require.NoError(t, sink.Write(context.Background(), testEvent()))

	out := buf.String()
	assert.Contains(t, out, "[CORVID]")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "billing")
	assert.Contains(t, out, "(billing in chargeCard)")
	assert.Contains(t, out, "Message: charge failed")
	assert.Contains(t, out, "Exception: DeclineError: card declined")
	assert.NotContains(t, out, "Stacktrace", "frames only print in verbose mode")
	assert.NotContains(t, out, "region")
}

func TestWrite_VerboseOutput(t *testing.T) {
	var buf bytes.Buffer
	sink := New(WithWriter(&buf), WithVerbose())

	require.NoError(t, sink.Write(context.Background(), testEvent()))

	out := buf.String()
	assert.Contains(t, out, "Tag region=eu")
	assert.Contains(t, out, "Extra invoice=1042")
	assert.Contains(t, out, "app/billing.chargeCard (/src/billing.go:40)")
}

func TestWrite_MinimalEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := New(WithWriter(&buf))

	require.NoError(t, sink.Write(context.Background(), corvid.Event{Level: corvid.LevelInfo}))

	assert.Contains(t, buf.String(), "INFO")
}

func TestFlushAndClose(t *testing.T) {
	sink := New()
	assert.NoError(t, sink.Flush(context.Background()))
	assert.NoError(t, sink.Close())
}
