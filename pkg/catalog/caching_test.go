package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingCatalog records how often each class id is looked up.
type countingCatalog struct {
	entries map[string]NodeType
	lookups int
}

func (c *countingCatalog) Lookup(_ context.Context, classID string) (*NodeType, error) {
	c.lookups++
	entry, ok := c.entries[classID]
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

func (c *countingCatalog) Search(_ context.Context, token string) ([]NodeType, error) {
	var matches []NodeType
	for _, entry := range c.entries {
		matches = append(matches, entry)
	}
	return matches, nil
}

func TestCachingCatalogLookup(t *testing.T) {
	inner := &countingCatalog{entries: map[string]NodeType{
		"com-gatewerk-mapper": {ClassID: "com-gatewerk-mapper", Version: 2},
	}}
	cat := NewCachingCatalog(inner, NewMemoryCache(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entry, err := cat.Lookup(ctx, "com-gatewerk-mapper")
		require.NoError(t, err)
		assert.Equal(t, 2, entry.Version)
	}

	assert.Equal(t, 1, inner.lookups, "repeated lookups should hit the cache")
}

func TestCachingCatalogMissesAreNotCached(t *testing.T) {
	inner := &countingCatalog{entries: map[string]NodeType{}}
	cat := NewCachingCatalog(inner, NewMemoryCache(time.Minute))
	ctx := context.Background()

	_, err := cat.Lookup(ctx, "com-gatewerk-new-type")
	assert.ErrorIs(t, err, ErrNotFound)

	// The type gets published between the two lookups.
	inner.entries["com-gatewerk-new-type"] = NodeType{ClassID: "com-gatewerk-new-type", Version: 1}

	entry, err := cat.Lookup(ctx, "com-gatewerk-new-type")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Version)
}

func TestCachingCatalogSearchPrefersLocal(t *testing.T) {
	inner := &countingCatalog{entries: map[string]NodeType{
		"com-gatewerk-mapper": {ClassID: "com-gatewerk-mapper", Version: 2},
	}}
	cache := NewMemoryCache(time.Minute)
	cat := NewCachingCatalog(inner, cache)
	ctx := context.Background()

	// Prime the cache through a lookup, then search locally.
	_, err := cat.Lookup(ctx, "com-gatewerk-mapper")
	require.NoError(t, err)

	matches, err := cat.Search(ctx, "mapper")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
