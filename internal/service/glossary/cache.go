package glossary

import (
	"context"
	"sync"
	"time"
)

// categoryCache memoizes the distinct-category facet for a fixed TTL.
// Reads take the lock only to inspect the snapshot; the refresh query runs
// outside the lock, so concurrent refreshes may race and the last writer
// wins. Staleness is bounded by the TTL either way.
type categoryCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	values    []string
	fetchedAt time.Time
}

func newCategoryCache(ttl time.Duration) *categoryCache {
	return &categoryCache{ttl: ttl}
}

func (c *categoryCache) get(ctx context.Context, fetch func(context.Context) ([]string, error)) ([]string, error) {
	c.mu.Lock()
	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl {
		values := c.values
		c.mu.Unlock()
		return values, nil
	}
	c.mu.Unlock()

	values, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.values = values
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return values, nil
}
