package person

import (
	"context"
	"sync"
	"time"

	"journalforing/pkg/platform/sentinel"
)

type cachedPerson struct {
	person   Person
	storedAt time.Time
}

// InMemoryCache is a TTL cache used in tests and when redis is not
// configured.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cachedPerson
	ttl     time.Duration
}

func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	return &InMemoryCache{
		entries: make(map[string]cachedPerson),
		ttl:     ttl,
	}
}

func (c *InMemoryCache) Find(_ context.Context, ident string) (*Person, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if cached, ok := c.entries[ident]; ok {
		if time.Since(cached.storedAt) < c.ttl {
			p := cached.person
			return &p, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (c *InMemoryCache) Save(_ context.Context, ident string, p *Person) error {
	if p == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ident] = cachedPerson{person: *p, storedAt: time.Now()}
	return nil
}
