package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/perfectbooks/stock-api/pkg/logger"
	"github.com/perfectbooks/stock-api/pkg/redis"
)

const (
	chartDataCacheName = "chart-data"
	summaryCacheName   = "dashboard-summary"
)

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CacheKey(name string) string
}

// Cache is a cache-aside layer over Redis for the dashboard aggregates.
// Every failure degrades to a recompute: a broken cache slows the dashboard
// down, it never takes it out.
type Cache struct {
	store cacheStore
	logg  *logger.Logger
	ttl   time.Duration
}

// NewCache wires the dashboard cache. Returns nil when Redis is disabled so
// callers can treat the whole layer as optional.
func NewCache(client *redis.Client, logg *logger.Logger, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{store: client, logg: logg, ttl: ttl}
}

// Get loads a cached aggregate into dest. Any error, including a corrupt
// payload, reads as a miss.
func (c *Cache) Get(ctx context.Context, name string, dest any) bool {
	if c == nil {
		return false
	}
	payload, err := c.store.Get(ctx, c.store.CacheKey(name))
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warn(ctx, name, "cache.get_failed", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		c.warn(ctx, name, "cache.decode_failed", err)
		return false
	}
	return true
}

// Set stores an aggregate with the configured TTL.
func (c *Cache) Set(ctx context.Context, name string, value any) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		c.warn(ctx, name, "cache.encode_failed", err)
		return
	}
	if err := c.store.Set(ctx, c.store.CacheKey(name), payload, c.ttl); err != nil {
		c.warn(ctx, name, "cache.set_failed", err)
	}
}

// Invalidate drops every cached aggregate. Called after each book or order
// mutation.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	keys := []string{
		c.store.CacheKey(chartDataCacheName),
		c.store.CacheKey(summaryCacheName),
	}
	if err := c.store.Del(ctx, keys...); err != nil {
		c.warn(ctx, "all", "cache.invalidate_failed", err)
	}
}

func (c *Cache) warn(ctx context.Context, name, msg string, err error) {
	if c.logg == nil {
		return
	}
	ctx = c.logg.WithField(ctx, "cache_name", name)
	c.logg.Warn(ctx, msg+": "+err.Error())
}
