// trace.go walks stack frames from a traceback chain or the live call
// stack and filters out the integration layer's own frames.

package corvid

import (
	"bufio"
	"os"
	"reflect"
	"runtime"
	"strings"
)

// Frame is one stack activation. Immutable once captured.
type Frame struct {
	// Module is the package path of the frame's function.
	Module string `json:"module,omitempty"`

	// Function is the bare function name within its package.
	Function string `json:"function,omitempty"`

	// AbsPath is the absolute source file path.
	AbsPath string `json:"abs_path,omitempty"`

	// Lineno is the line number within the file.
	Lineno int `json:"lineno,omitempty"`

	// PreContext, ContextLine and PostContext hold a window of source
	// lines around Lineno when context loading is enabled.
	PreContext  []string `json:"pre_context,omitempty"`
	ContextLine string   `json:"context_line,omitempty"`
	PostContext []string `json:"post_context,omitempty"`

	// Vars is a best-effort textual snapshot of local values. The Go
	// runtime does not expose function locals, so this is only populated
	// on explicitly constructed frames.
	Vars map[string]string `json:"vars,omitempty"`
}

// Trace is an ordered frame sequence, outermost frame first. An empty
// trace is never attached to an event; callers must treat it as absent.
type Trace struct {
	Frames []Frame `json:"frames"`
}

// sdkPackagePath is the module prefix of corvid itself, filtered out of
// ambient captures by default so reported stacks start at caller code.
var sdkPackagePath = reflect.TypeOf(Record{}).PkgPath()

// CaptureTrace walks the live call stack, starting at the caller skip
// levels above CaptureTrace itself, and returns the frames outermost
// first. contextLines > 0 additionally loads a window of source lines
// around each frame, best-effort.
func CaptureTrace(skip, contextLines int) *Trace {
	pcs := make([]uintptr, 64)
	for {
		n := runtime.Callers(skip+2, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, len(pcs)*2)
	}
	return TraceFromPCs(pcs, contextLines)
}

// TraceFromPCs resolves an already-captured program-counter chain (as
// produced by runtime.Callers, innermost first) into a Trace. This is
// the traceback path used for exception triples.
func TraceFromPCs(pcs []uintptr, contextLines int) *Trace {
	if len(pcs) == 0 {
		return &Trace{}
	}

	frames := make([]Frame, 0, len(pcs))
	iter := runtime.CallersFrames(pcs)
	for {
		rf, more := iter.Next()
		if rf.Function != "" && !runtimeInternal(rf.Function) {
			frames = append(frames, newFrame(rf, contextLines))
		}
		if !more {
			break
		}
	}

	// runtime yields innermost first; the wire order is outermost first.
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	return &Trace{Frames: frames}
}

// runtimeInternal reports whether a fully qualified function name lives
// in the runtime itself (gopanic, goexit and friends). Those frames are
// unwinding machinery, not code anyone raised an error from.
func runtimeInternal(full string) bool {
	module, _ := SplitFunction(full)
	return module == "runtime" || strings.HasPrefix(module, "runtime/")
}

// newFrame builds a Frame from a resolved runtime frame.
func newFrame(rf runtime.Frame, contextLines int) Frame {
	module, function := SplitFunction(rf.Function)
	f := Frame{
		Module:   module,
		Function: function,
		AbsPath:  rf.File,
		Lineno:   rf.Line,
	}
	if contextLines > 0 && rf.File != "" && rf.Line > 0 {
		f.PreContext, f.ContextLine, f.PostContext = sourceContext(rf.File, rf.Line, contextLines)
	}
	return f
}

// SplitFunction splits a fully qualified runtime function name such as
// "github.com/acme/app/worker.(*Pool).run" into its package path and
// bare function name.
func SplitFunction(full string) (module, function string) {
	function = full
	slash := strings.LastIndexByte(full, '/')
	if dot := strings.IndexByte(full[slash+1:], '.'); dot >= 0 {
		module = full[:slash+1+dot]
		function = full[slash+1+dot+1:]
	}
	return module, function
}

// sourceContext reads a window of source lines around line from path.
// Any failure yields empty context; capture never aborts on it.
func sourceContext(path string, line, window int) (pre []string, ctx string, post []string) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Tolerate generated files with very long lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	no := 0
	for scanner.Scan() {
		no++
		if no < line-window {
			continue
		}
		if no > line+window {
			break
		}
		text := strings.TrimRight(scanner.Text(), "\r\n")
		switch {
		case no < line:
			pre = append(pre, text)
		case no == line:
			ctx = text
		default:
			post = append(post, text)
		}
	}
	return pre, ctx, post
}

// filter returns the trace with frames from the given module prefixes
// removed. Filtering never empties a trace: if every frame would be
// removed, the original trace is returned unchanged.
func (t *Trace) filter(ignorePrefixes []string) *Trace {
	if t == nil || len(t.Frames) == 0 || len(ignorePrefixes) == 0 {
		return t
	}

	kept := make([]Frame, 0, len(t.Frames))
	for _, f := range t.Frames {
		if !moduleIgnored(f.Module, ignorePrefixes) {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return t
	}
	return &Trace{Frames: kept}
}

// moduleIgnored matches on package-path boundaries so a prefix never
// swallows a sibling package that merely shares its spelling.
func moduleIgnored(module string, prefixes []string) bool {
	for _, p := range prefixes {
		p = strings.TrimSuffix(p, "/")
		if p == "" {
			continue
		}
		if module == p || strings.HasPrefix(module, p+"/") {
			return true
		}
	}
	return false
}

// last returns the innermost frame, the most specific activation.
func (t *Trace) last() (Frame, bool) {
	if t == nil || len(t.Frames) == 0 {
		return Frame{}, false
	}
	return t.Frames[len(t.Frames)-1], true
}

// empty reports whether the trace carries no frames and must therefore
// be suppressed from the event.
func (t *Trace) empty() bool {
	return t == nil || len(t.Frames) == 0
}
