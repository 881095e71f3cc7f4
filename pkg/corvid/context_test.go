package corvid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTags_RoundTrip(t *testing.T) {
	ctx := WithTags(context.Background(), map[string]string{"region": "eu"})

	tags, ok := TagsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"region": "eu"}, tags)
}

func TestWithTags_NestedMerge(t *testing.T) {
	ctx := WithTags(context.Background(), map[string]string{"region": "eu", "tier": "gold"})
	ctx = WithTags(ctx, map[string]string{"region": "us"})

	tags, ok := TagsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "us", tags["region"], "inner call wins on collision")
	assert.Equal(t, "gold", tags["tier"])
}

func TestWithTags_EmptyIsNoop(t *testing.T) {
	base := context.Background()
	assert.Equal(t, base, WithTags(base, nil))

	_, ok := TagsFromContext(base)
	assert.False(t, ok)
}

func TestWithTags_DoesNotMutateOuterScope(t *testing.T) {
	outer := WithTags(context.Background(), map[string]string{"region": "eu"})
	_ = WithTags(outer, map[string]string{"region": "us"})

	tags, _ := TagsFromContext(outer)
	assert.Equal(t, "eu", tags["region"])
}
