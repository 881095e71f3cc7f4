// context.go propagates ambient tags through context.Context so callers
// can scope metadata to a request or job without threading it manually.

package corvid

import "context"

type tagsKey struct{}

// WithTags returns a context carrying tags that are merged onto every
// event assembled under it. Tags supplied on the record itself win on
// key collisions. Nested calls merge with the inner call winning.
func WithTags(ctx context.Context, tags map[string]string) context.Context {
	if len(tags) == 0 {
		return ctx
	}
	merged := make(map[string]string, len(tags))
	if existing, ok := TagsFromContext(ctx); ok {
		for k, v := range existing {
			merged[k] = v
		}
	}
	for k, v := range tags {
		merged[k] = v
	}
	return context.WithValue(ctx, tagsKey{}, merged)
}

// TagsFromContext extracts the ambient tag mapping from the context.
// Returns false when no tags are attached.
func TagsFromContext(ctx context.Context) (map[string]string, bool) {
	tags, ok := ctx.Value(tagsKey{}).(map[string]string)
	return tags, ok && len(tags) > 0
}
