package person

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"journalforing/pkg/platform/sentinel"
)

// RedisCache caches registry lookups in redis with a TTL. Entries are small
// JSON blobs keyed by ident; expiry keeps sensitive data from lingering.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) key(ident string) string {
	return "person:" + ident
}

func (c *RedisCache) Find(ctx context.Context, ident string) (*Person, error) {
	raw, err := c.client.Get(ctx, c.key(ident)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("person cache get: %w", err)
	}
	var p Person
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("person cache decode: %w", err)
	}
	return &p, nil
}

func (c *RedisCache) Save(ctx context.Context, ident string, p *Person) error {
	if p == nil {
		return nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("person cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(ident), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("person cache set: %w", err)
	}
	return nil
}
