// extra.go classifies a record's attribute mapping into reserved control
// keys and opaque extra metadata.

package corvid

import "reflect"

// Reserved attribute keys intercepted from Record.Extra. Reserved
// handling always wins over generic metadata copying for the same key.
const (
	attrStack   = "stack"
	attrTags    = "tags"
	attrData    = "data"
	attrCulprit = "culprit"
)

// recordAttrs is the classified form of a record's attribute mapping.
type recordAttrs struct {
	// stackWanted is true when the record asked for ambient call-stack
	// capture via a truthy "stack" attribute.
	stackWanted bool

	// explicitStack is a pre-built frame sequence supplied under
	// "stack", used verbatim as the event's stacktrace.
	explicitStack *Trace

	// tags is copied verbatim onto the event.
	tags map[string]string

	// culprit overrides the derived culprit when non-empty.
	culprit string

	// extra holds the rendered opaque metadata.
	extra map[string]string
}

// classifyAttrs scans the attribute mapping with a fixed dispatch over
// the reserved keys; every unrecognized key is rendered into extra
// metadata under its original name.
func classifyAttrs(attrs map[string]any) recordAttrs {
	out := recordAttrs{extra: make(map[string]string)}

	for key, value := range attrs {
		switch key {
		case attrStack:
			switch v := value.(type) {
			case bool:
				out.stackWanted = v
			case *Trace:
				out.explicitStack = v
			case Trace:
				out.explicitStack = &v
			case []Frame:
				out.explicitStack = &Trace{Frames: v}
			}
		case attrTags:
			// Copied so later passes never mutate the caller's map.
			if tags, ok := value.(map[string]string); ok && len(tags) > 0 {
				out.tags = make(map[string]string, len(tags))
				for k, v := range tags {
					out.tags[k] = v
				}
			}
		case attrCulprit:
			if s, ok := value.(string); ok {
				out.culprit = s
			}
		case attrData:
			flattenData(value, out.extra)
		default:
			out.extra[key] = renderValue(value)
		}
	}
	return out
}

// flattenData renders a "data" attribute into extra metadata. A mapping
// is flattened one level, each entry rendered under its own key; any
// other value lands as a single rendered blob under "data".
func flattenData(value any, extra map[string]string) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		iter := rv.MapRange()
		for iter.Next() {
			extra[iter.Key().String()] = renderValue(iter.Value().Interface())
		}
		return
	}
	extra[attrData] = renderValue(value)
}
