package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// SeenCache remembers which article URLs were digested recently, so the
// same story is not summarized and mailed twice when it appears in
// several feeds or consecutive runs. Entries expire after a TTL and the
// cache evicts least-recently-seen entries past maxSize.
type SeenCache struct {
	mu      sync.Mutex
	entries map[string]time.Time
	order   []string
	maxSize int
	ttl     time.Duration
}

func NewSeenCache(maxSize int, ttl time.Duration) *SeenCache {
	if maxSize <= 0 {
		maxSize = 500
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SeenCache{
		entries: make(map[string]time.Time),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func cacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:16])
}

// Seen reports whether url was marked within the TTL window.
func (c *SeenCache) Seen(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(url)
	at, exists := c.entries[key]
	if !exists {
		return false
	}

	if time.Since(at) > c.ttl {
		delete(c.entries, key)
		c.removeFromOrder(key)
		return false
	}

	c.moveToEnd(key)
	return true
}

// Mark records url as seen now.
func (c *SeenCache) Mark(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(url)
	if _, exists := c.entries[key]; exists {
		c.entries[key] = time.Now()
		c.moveToEnd(key)
		return
	}

	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = time.Now()
	c.order = append(c.order, key)
}

// Len returns the number of live entries.
func (c *SeenCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *SeenCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *SeenCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
