// Package cache memoizes resolved translations for the lifetime of the
// process. The mapping is unbounded on purpose: keys are short phrases with
// a small working set, and the only eviction is the operator-triggered
// clear exposed at the HTTP boundary.
package cache

import (
	"fmt"
	"sync"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

// Entry is a cached resolution: the translated text plus the method that
// produced it.
type Entry struct {
	Text   string
	Method string
}

// Key identifies a cached translation by normalized text and direction.
func Key(normalizedText string, src, tgt language.Language) string {
	return fmt.Sprintf("%s::%s->%s", normalizedText, src, tgt)
}

// Cache is a concurrency-safe in-memory translation cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Get retrieves a cached entry.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// Put stores an entry.
func (c *Cache) Put(key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns up to n cache keys, for the stats endpoint. Order is not
// specified.
func (c *Cache) Keys(n int) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, n)
	for k := range c.entries {
		if len(keys) >= n {
			break
		}
		keys = append(keys, k)
	}
	return keys
}

// Clear empties the cache and returns the number of removed entries.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := len(c.entries)
	c.entries = make(map[string]Entry)
	return removed
}
