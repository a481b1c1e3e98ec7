package cache

import (
	"sync"
	"time"
)

// Cache is a simple in-memory key-value store with per-entry expiration.
// Expired entries are unreachable from Get and purged lazily.
type Cache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry

	// now is swappable by wrappers for expiry tests.
	now func() time.Time
}

type cacheEntry struct {
	value      interface{}
	expiration int64
}

// New creates a new cache.
func New() *Cache {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Cache {
	return &Cache{
		data: make(map[string]cacheEntry),
		now:  now,
	}
}

// Set adds an item to the cache with a specified key, value, and expiration duration.
// An expiration of zero means the entry never expires.
func (c *Cache) Set(key string, value interface{}, expiration time.Duration) {
	var exp int64
	if expiration > 0 {
		exp = c.now().Add(expiration).UnixNano()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = cacheEntry{
		value:      value,
		expiration: exp,
	}
}

// Get retrieves the value associated with a key from the cache.
// Returns false if the key does not exist or the entry has expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.data[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if entry.expiration > 0 && c.now().UnixNano() > entry.expiration {
		c.Delete(key)
		return nil, false
	}

	return entry.value, true
}

// purgeExpired removes every expired entry in one pass.
func (c *Cache) purgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now().UnixNano()
	for key, entry := range c.data {
		if entry.expiration > 0 && now > entry.expiration {
			delete(c.data, key)
		}
	}
}

// Delete removes an item from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Len returns the number of entries currently stored, including entries
// that have expired but were not yet purged.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
