package catalog

import "context"

// CachingCatalog wraps a Catalog with a TTL cache. Only successful lookups
// are cached; a missing type is always re-checked against the service so a
// newly published node type becomes visible immediately.
type CachingCatalog struct {
	inner Catalog
	cache Cache
}

// NewCachingCatalog wraps a catalog with a cache.
func NewCachingCatalog(inner Catalog, cache Cache) *CachingCatalog {
	return &CachingCatalog{
		inner: inner,
		cache: cache,
	}
}

// Lookup returns the cached entry when fresh, otherwise asks the wrapped
// catalog and caches the result.
func (c *CachingCatalog) Lookup(ctx context.Context, classID string) (*NodeType, error) {
	if entry, ok, err := c.cache.Get(ctx, classID); err == nil && ok {
		return entry, nil
	}

	entry, err := c.inner.Lookup(ctx, classID)
	if err != nil {
		return nil, err
	}

	// A cache write failure only costs a future round trip.
	_ = c.cache.Put(ctx, entry)
	return entry, nil
}

// Search prefers results from the cache and falls back to the wrapped
// catalog when nothing cached matches.
func (c *CachingCatalog) Search(ctx context.Context, token string) ([]NodeType, error) {
	if matches, err := c.cache.Search(ctx, token); err == nil && len(matches) > 0 {
		return matches, nil
	}
	return c.inner.Search(ctx, token)
}
