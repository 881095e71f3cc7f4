package corvid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// panicString panics from its String method.
type panicString struct{}

func (panicString) String() string { panic("no rendering for you") }

// panicError panics from its Error method.
type panicError struct{}

func (panicError) Error() string { panic("broken error") }

func TestRenderValue_StringsAreQuoted(t *testing.T) {
	assert.Equal(t, `"http://example.com"`, renderValue("http://example.com"))
	assert.Equal(t, `""`, renderValue(""))
}

func TestRenderValue_NonStrings(t *testing.T) {
	assert.Equal(t, "42", renderValue(42))
	assert.Equal(t, "3.5", renderValue(3.5))
	assert.Equal(t, "true", renderValue(true))
	assert.Equal(t, "nil", renderValue(nil))
	assert.Equal(t, "[1 2]", renderValue([]int{1, 2}))
	assert.Equal(t, "boom", renderValue(errors.New("boom")))
}

func TestRenderValue_Deterministic(t *testing.T) {
	v := map[string]int{"a": 1}
	assert.Equal(t, renderValue(v), renderValue(v))
}

func TestRenderValue_PanicFallsBackToPlaceholder(t *testing.T) {
	assert.Equal(t, unrenderable, renderValue(panicError{}))
}

func TestRenderValue_PanickingStringerDoesNotPropagate(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = renderValue(panicString{})
	})
}

func TestRenderArgs_EmptyIsNotNil(t *testing.T) {
	out := renderArgs(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRenderArgs_PreservesOrder(t *testing.T) {
	out := renderArgs([]any{"a", 1, "b"})
	assert.Equal(t, []string{`"a"`, "1", `"b"`}, out)
}
