package fetcher

import (
	"sync"
	"time"
)

// Cache is a small bounded TTL cache for fetched CSV bodies, keyed by
// spreadsheet and gid. When full it evicts in insertion order. It exists to
// shortcut repeated fetches within the freshness window; it never serves an
// entry older than the TTL.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	order   []string
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	body    string
	fetched time.Time
}

func NewCache(ttl time.Duration, max int) *Cache {
	if max <= 0 {
		max = 20
	}
	return &Cache{
		ttl:     ttl,
		max:     max,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached body if present and fresh.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.fetched) >= c.ttl {
		c.remove(key)
		return "", false
	}
	return e.body, true
}

// Put stores a body, evicting the oldest entry when the cache is full.
func (c *Cache) Put(key, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.remove(key)
	}
	c.entries[key] = cacheEntry{body: body, fetched: c.now()}
	c.order = append(c.order, key)

	for len(c.entries) > c.max {
		c.remove(c.order[0])
	}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
