// Package cache holds the per-category freshness cache. Each entry is the
// already-deduplicated, capped article list for one category together with
// the time it was refreshed; entries expire after a TTL or on explicit
// invalidation. The cache is purely in-memory and owned by the service that
// created it, never shared process-wide.
package cache

import (
	"sync"
	"time"

	"newslens/internal/model"
)

type Entry struct {
	FetchedAt time.Time
	Articles  []model.Article
}

type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[model.Category]Entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[model.Category]Entry),
	}
}

// Get returns the cached list for category if it exists and is fresher than
// the TTL. The second return is false for missing and for stale entries alike.
func (c *Cache) Get(category model.Category) ([]model.Article, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[category]
	if !exists {
		return nil, false
	}
	if time.Since(entry.FetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.Articles, true
}

// Set replaces the entry for category wholesale: timestamp and list together.
// There is no partial refresh.
func (c *Cache) Set(category model.Category, articles []model.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[category] = Entry{
		FetchedAt: time.Now(),
		Articles:  articles,
	}
}

// Invalidate drops one category's entry so the next access refetches.
func (c *Cache) Invalidate(category model.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, category)
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[model.Category]Entry)
}
