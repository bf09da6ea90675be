// Package cache provides a small TTL-based memoization map for query
// results. Entries are stored whole with their creation timestamp and
// served only while younger than the time-to-live.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	createdAt time.Time
}

// TTL memoizes values per string key for a fixed time-to-live. A stale
// entry is never served; the next Get misses and the caller recomputes.
// Safe for concurrent use: the HTTP layer serves requests in parallel
// even though any single browsing session is sequential.
type TTL[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[V]
	now     func() time.Time
}

// NewTTL creates a cache with the given time-to-live.
func NewTTL[V any](ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (c *TTL[V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the cached value for key if it is still fresh.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.createdAt) >= c.ttl {
		var zero V
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, replacing any previous entry. The entry
// is written in full or not at all; callers must not store partially
// built values.
func (c *TTL[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, createdAt: c.now()}
}

// Len returns the number of entries, fresh or not.
func (c *TTL[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
