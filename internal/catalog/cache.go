package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/metrics"
)

// cachedItemEntry wraps an item with version metadata for cache invalidation
type cachedItemEntry struct {
	Version  string
	Item     domain.Item
	CachedAt time.Time
}

// itemCache is an in-memory LRU of catalog rows keyed by item code,
// with time-based expiration so a resynced catalog is eventually observed.
type itemCache struct {
	lru *expirable.LRU[int, *cachedItemEntry]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &itemCache{
		lru: expirable.NewLRU[int, *cachedItemEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached item so callers cannot mutate the cache
func (c *itemCache) Get(code int) (domain.Item, bool) {
	entry, found := c.lru.Get(code)
	if !found {
		metrics.CatalogCacheMisses.Inc()
		return domain.Item{}, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(code)
		metrics.CatalogCacheMisses.Inc()
		return domain.Item{}, false
	}
	metrics.CatalogCacheHits.Inc()
	item := entry.Item
	item.Stats = entry.Item.Stats.Clone()
	return item, true
}

func (c *itemCache) Set(item domain.Item) {
	stored := item
	stored.Stats = item.Stats.Clone()
	c.lru.Add(item.Code, &cachedItemEntry{
		Version:  CacheSchemaVersion,
		Item:     stored,
		CachedAt: time.Now(),
	})
}

func (c *itemCache) Clear() {
	c.lru.Purge()
}

func (c *itemCache) Len() int {
	return c.lru.Len()
}
