package inmemory

import (
	"sync"

	financedomain "smata-ledger/internal/domain/finance"
)

// InMemoryOverviewCache caches derived monthly overviews keyed by YYYY-MM.
// Entries live until the next Clear; the finance service clears the cache on
// every write that can affect derivation.
type InMemoryOverviewCache struct {
	mu    sync.RWMutex
	items map[string]financedomain.Overview
}

func NewInMemoryOverviewCache() *InMemoryOverviewCache {
	return &InMemoryOverviewCache{
		items: make(map[string]financedomain.Overview),
	}
}

func (c *InMemoryOverviewCache) Get(month string) (financedomain.Overview, bool) {
	c.mu.RLock()
	overview, ok := c.items[month]
	c.mu.RUnlock()
	return overview, ok
}

func (c *InMemoryOverviewCache) Set(month string, overview financedomain.Overview) {
	c.mu.Lock()
	c.items[month] = overview
	c.mu.Unlock()
}

func (c *InMemoryOverviewCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]financedomain.Overview)
	c.mu.Unlock()
}
