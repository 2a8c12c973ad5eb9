package images

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "foodsync:img:"

// Cache is the slice of the redis client the decorator needs. Keeping it
// narrow lets tests stand in for redis with prefabricated command results.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedResolver memoizes successful lookups so repeated syncs do not hammer
// the search page for the same title. Misses and cache errors fall through to
// the wrapped resolver; only non-empty results are written back.
type CachedResolver struct {
	inner Resolver
	cache Cache
	ttl   time.Duration
	log   *zap.SugaredLogger
}

func NewCachedResolver(inner Resolver, cache Cache, ttl time.Duration, log *zap.SugaredLogger) *CachedResolver {
	return &CachedResolver{inner: inner, cache: cache, ttl: ttl, log: log}
}

func (c *CachedResolver) Resolve(ctx context.Context, query string) string {
	key := cacheKeyPrefix + query
	if v, err := c.cache.Get(ctx, key).Result(); err == nil && v != "" {
		return v
	}
	u := c.inner.Resolve(ctx, query)
	if u != "" {
		if err := c.cache.Set(ctx, key, u, c.ttl).Err(); err != nil {
			c.log.Debugw("image cache write failed", "query", query, "err", err)
		}
	}
	return u
}
