// ABOUTME: TTL-bounded in-memory cache for search results
// ABOUTME: Keyed by raw query text; lazy expiry, no size bound, no LRU
package search

import (
	"sync"
	"time"

	"github.com/harper/mailvec/internal/models"
)

// DefaultCacheTTL is the freshness window for cached search results.
const DefaultCacheTTL = 5 * time.Minute

// Cache memoizes search results per raw query text. The key is deliberately
// not normalized: "Budget" and "budget " are distinct entries. Entries are
// not invalidated when the store mutates; the TTL bounds how stale a cached
// result can get, and a stale-or-missing cache can never produce a wrong
// answer, only a recomputation.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	result   models.SearchResult
	storedAt time.Time
}

// NewCache creates a cache with the given freshness window. Non-positive
// TTLs fall back to DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Lookup returns the cached result for the exact query text, if present and
// fresh. Expired entries are deleted lazily on access.
func (c *Cache) Lookup(queryText string) (models.SearchResult, bool) {
	c.mu.RLock()
	entry, ok := c.entries[queryText]
	c.mu.RUnlock()

	if !ok {
		return models.SearchResult{}, false
	}

	if c.now().Sub(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, queryText)
		c.mu.Unlock()
		return models.SearchResult{}, false
	}

	return entry.result, true
}

// Store caches a result for the exact query text, overwriting any prior
// entry.
func (c *Cache) Store(queryText string, result models.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[queryText] = cacheEntry{
		result:   result,
		storedAt: c.now(),
	}
}

// Clear drops all cached entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of cached entries, including any not yet lazily
// expired.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
