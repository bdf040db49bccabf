// Package query is the data-fetching layer between the services and the
// API client: a TTL cache keyed by resource+operation+parameters, explicit
// invalidation for mutations, a fixed-interval poller for the chat views,
// and a page-accumulating feed for infinite scroll.
package query

import (
	"context"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// DefaultTTL is how long a cached read stays fresh unless overridden.
const DefaultTTL = 30 * time.Second

// Cache is a revalidate-on-demand response cache. Entries expire on TTL or
// on explicit invalidation after a mutation; a read for an absent key runs
// the fetch function and stores the result.
type Cache struct {
	inner *ttlcache.Cache[string, any]
}

// NewCache builds a cache with the given default TTL (DefaultTTL when zero)
// and starts its expiration loop.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	inner := ttlcache.New(
		ttlcache.WithTTL[string, any](ttl),
		ttlcache.WithDisableTouchOnHit[string, any](),
	)
	go inner.Start()

	return &Cache{inner: inner}
}

// Stop terminates the expiration loop.
func (c *Cache) Stop() {
	c.inner.Stop()
}

// Invalidate drops the given keys.
func (c *Cache) Invalidate(keys ...string) {
	for _, k := range keys {
		c.inner.Delete(k)
	}
}

// InvalidatePrefix drops every key under the given prefix, e.g. all cached
// pages of a list after a create.
func (c *Cache) InvalidatePrefix(prefix string) {
	for _, k := range c.inner.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.inner.Delete(k)
		}
	}
}

// Clear drops every entry (e.g. on logout, when cached reads may contain
// another user's data).
func (c *Cache) Clear() {
	c.inner.DeleteAll()
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	return c.inner.Len()
}

// Fetch returns the cached value for key, or runs fn and caches its result
// with the given ttl (0 means the cache default). Failed fetches are not
// cached.
func Fetch[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if item := c.inner.Get(key); item != nil && !item.IsExpired() {
		if v, ok := item.Value().(T); ok {
			return v, nil
		}
	}

	v, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if ttl <= 0 {
		ttl = ttlcache.DefaultTTL
	}
	c.inner.Set(key, v, ttl)
	return v, nil
}
