package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// listCache is a small JSON cache over Redis. The event list TTL matches the
// poll interval of the listing view, so repeated polls within one interval
// hit Redis instead of Postgres.
type listCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache wires the cache to a Redis client.
func NewListCache(client *redis.Client, ttlSeconds int) *listCache {
	if ttlSeconds <= 0 {
		ttlSeconds = 5
	}
	return &listCache{client: client, ttl: time.Duration(ttlSeconds) * time.Second}
}

func (c *listCache) get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *listCache) set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *listCache) invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	_ = c.client.Del(ctx, keys...).Err()
}

func ownerEventsKey(ownerID string) string {
	return fmt.Sprintf("events:list:%s", ownerID)
}

const dashboardKey = "admin:dashboard"
