// Package state provides durable local state for the SkillShare client.
package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/internal/telemetry/metric"
)

// cachePrefix namespaces page-cache entries in the store.
const cachePrefix = "cache/"

// DefaultCacheTTL is how long a cached page stays valid.
const DefaultCacheTTL = 2 * time.Minute

// PageCache caches raw list-response bodies keyed by request signature.
//
// Entries expire via Badger TTL; a hit after expiry is a miss. Writes
// that mutate server state should call Invalidate for the affected
// route so the next read refetches.
type PageCache struct {
	store   *Store
	ttl     time.Duration
	metrics *metric.Registry
}

// NewPageCache creates a page cache over s. A nil metrics registry
// disables hit/miss accounting. A non-positive ttl uses DefaultCacheTTL.
// Badger tracks expiry in whole seconds, so ttl should be at least one
// second; anything shorter expires on the next read.
func NewPageCache(s *Store, ttl time.Duration, metrics *metric.Registry) *PageCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &PageCache{store: s, ttl: ttl, metrics: metrics}
}

// Key builds a cache key from the route and its query signature.
// Murmur3 keeps keys short and uniform regardless of query length.
func Key(route, query string) []byte {
	h := murmur3.Sum64([]byte(route + "?" + query))
	return []byte(fmt.Sprintf("%s%s/%016x", cachePrefix, route, h))
}

// Get returns the cached body for key, or domain.ErrCacheMiss.
func (c *PageCache) Get(key []byte) ([]byte, error) {
	body, err := c.store.Get(key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			if c.metrics != nil {
				c.metrics.CacheMisses.Inc()
			}
			return nil, domain.ErrCacheMiss
		}
		return nil, domain.ErrStorage.WithCause(err)
	}
	if c.metrics != nil {
		c.metrics.CacheHits.Inc()
	}
	return body, nil
}

// Put stores body under key with the cache TTL.
func (c *PageCache) Put(key, body []byte) error {
	if err := c.store.SetWithTTL(key, body, c.ttl); err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	return nil
}

// Invalidate drops every cached page for the given route.
func (c *PageCache) Invalidate(route string) error {
	prefix := []byte(cachePrefix + route + "/")
	if err := c.store.DeletePrefix(prefix); err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	return nil
}

// InvalidateAll drops the entire page cache. Used on logout so a
// following login as another user cannot see stale pages.
func (c *PageCache) InvalidateAll() error {
	if err := c.store.DeletePrefix([]byte(cachePrefix)); err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	return nil
}
