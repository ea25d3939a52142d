package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redisapp "sundar_marbles/internal/storage/redis"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Cache keys for public listing projections.
const (
	CacheKeyProductCategories = "listing:products:categories_with_count"
	CacheKeyFeaturedProducts  = "listing:products:featured"
	CacheKeyGalleryCategories = "listing:gallery:categories_with_count"
	CacheKeyFeaturedImages    = "listing:gallery:featured"
)

// RedisListingCache stores listing projections as JSON in Redis.
type RedisListingCache struct {
	client *redisapp.Client
}

func NewRedisListingCache(client *redisapp.Client) *RedisListingCache {
	return &RedisListingCache{client: client}
}

func (c *RedisListingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}

	return true, nil
}

func (c *RedisListingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisListingCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// MemoryListingCache is the in-process fallback used when Redis is
// disabled in config. Values are stored as-is, not serialized.
type MemoryListingCache struct {
	cache *gocache.Cache
}

func NewMemoryListingCache() *MemoryListingCache {
	return &MemoryListingCache{
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *MemoryListingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, ok := c.cache.Get(key)
	if !ok {
		return false, nil
	}

	// Round-trip through JSON so the contract matches the Redis backend.
	data, err := json.Marshal(val)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}

	return true, nil
}

func (c *MemoryListingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

func (c *MemoryListingCache) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		c.cache.Delete(key)
	}
	return nil
}
