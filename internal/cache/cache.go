// Package cache is a small TTL + LRU memoization layer for derived tables.
// Staleness within the TTL window is acceptable for a reporting dashboard,
// and concurrent requests for the same key may recompute redundantly rather
// than coordinate.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache wraps an expirable LRU: entries expire after the TTL and the oldest
// entries are evicted once maxEntries is exceeded.
type Cache[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

func New[K comparable, V any](maxEntries int, ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{lru: expirable.NewLRU[K, V](maxEntries, nil, ttl)}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

func (c *Cache[K, V]) Add(key K, value V) {
	c.lru.Add(key, value)
}

// Purge drops every entry — the dashboard's explicit "reload data" action.
func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
}

func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}
