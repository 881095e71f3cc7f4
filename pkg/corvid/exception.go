// exception.go describes an attached exception triple and triggers
// stack capture from its traceback.

package corvid

import (
	"reflect"
	"runtime"
)

// ExcInfo is a record's exception triple: the error plus the traceback
// captured where it was handled. Build one with NewExcInfo at the
// capture site, or populate Trace directly with pre-walked frames.
type ExcInfo struct {
	// Err is the exception value.
	Err error

	// Trace is an optional pre-walked traceback. When nil, the chain
	// captured by NewExcInfo is walked instead.
	Trace *Trace

	// pcs is the raw program-counter chain recorded by NewExcInfo.
	pcs []uintptr
}

// NewExcInfo captures the call stack at the caller as the traceback for
// err. Call it where the error is handled, typically right next to the
// recover or the failed operation.
func NewExcInfo(err error) *ExcInfo {
	return newExcInfoSkip(err, 1)
}

// newExcInfoSkip is NewExcInfo with extra frames skipped, used by
// helpers such as Recover that sit between the panic and the capture.
func newExcInfoSkip(err error, skip int) *ExcInfo {
	pcs := make([]uintptr, 64)
	for {
		n := runtime.Callers(skip+2, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, len(pcs)*2)
	}
	return &ExcInfo{Err: err, pcs: pcs}
}

// ExceptionInfo is the structured exception payload.
type ExceptionInfo struct {
	// Type is the exception's type name.
	Type string `json:"type"`

	// Value is the exception's display string.
	Value string `json:"value"`
}

// describeException produces the exception payload and walks the
// triple's own traceback into a Trace. The returned trace may be empty
// when the triple carries no frames; the caller decides the fallback.
func describeException(exc *ExcInfo, contextLines int) (*ExceptionInfo, *Trace) {
	info := &ExceptionInfo{
		Type:  errorTypeName(exc.Err),
		Value: errorValue(exc.Err),
	}

	trace := exc.Trace
	if trace == nil {
		trace = TraceFromPCs(exc.pcs, contextLines)
	}
	return info, trace
}

// errorTypeName derives the dynamic type name of an error, dereferencing
// pointers. Anonymous types fall back to their full type string.
func errorTypeName(err error) string {
	t := reflect.TypeOf(err)
	if t == nil {
		return "error"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// errorValue renders err.Error() under the non-throwing contract.
func errorValue(err error) (out string) {
	defer func() {
		if recover() != nil {
			out = unrenderable
		}
	}()
	if err == nil {
		return ""
	}
	return err.Error()
}
