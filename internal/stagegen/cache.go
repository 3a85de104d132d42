package stagegen

import (
	"sync"
	"time"

	"github.com/praxis-coach/praxis/internal/quest"
)

// Cache stores generated stages keyed by quest topic and title, so
// re-initializing a goal does not repeat identical LLM calls.
type Cache interface {
	Get(key string) ([]quest.CapabilityStage, bool)
	Put(key string, stages []quest.CapabilityStage)
}

// DefaultCacheTTL is how long cached stages stay fresh.
const DefaultCacheTTL = 24 * time.Hour

type cacheEntry struct {
	stages  []quest.CapabilityStage
	expires time.Time
}

// MemoryCache is an in-process TTL cache.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates a cache with the given TTL. A zero ttl uses
// DefaultCacheTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(key string) ([]quest.CapabilityStage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.stages, true
}

func (c *MemoryCache) Put(key string, stages []quest.CapabilityStage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{stages: stages, expires: c.now().Add(c.ttl)}
}
