package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shophub/models"
)

const (
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"

	// DefaultCacheTTL is how long cached catalog responses live.
	DefaultCacheTTL = 5 * time.Minute
)

// CatalogCacheClient is the slice of the Redis API the cache uses.
// *redis.Client satisfies it.
type CatalogCacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// CatalogCache caches catalog listings in Redis with version-key
// invalidation: writes bump the version, orphaning every cached list at once.
// Cache trouble degrades to the database, never to an error.
type CatalogCache struct {
	redis CatalogCacheClient
	ttl   time.Duration
}

// NewCatalogCache creates a new CatalogCache.
func NewCatalogCache(client CatalogCacheClient) *CatalogCache {
	return &CatalogCache{redis: client, ttl: DefaultCacheTTL}
}

// GetList retrieves a cached product list for the given filter key.
func (c *CatalogCache) GetList(ctx context.Context, filterKey string) ([]models.Product, bool) {
	version, err := c.version(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	data, err := c.redis.Get(ctx, c.listKey(version, filterKey)).Result()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetListAsync caches a product list in the background.
func (c *CatalogCache) SetListAsync(filterKey string, products []models.Product) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := c.version(ctx)
		if err != nil || version == 0 {
			return
		}

		data, err := json.Marshal(products)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}

		if err := c.redis.Set(ctx, c.listKey(version, filterKey), data, c.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// Invalidate bumps the cache version, orphaning all cached lists.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump catalog cache version", zap.Error(err))
	}
}

func (c *CatalogCache) version(ctx context.Context) (int64, error) {
	version, err := c.redis.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		// First use; initialize so subsequent sets have a version to key on.
		if err := c.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (c *CatalogCache) listKey(version int64, filterKey string) string {
	return fmt.Sprintf("%s%d:%s", productListCachePrefix, version, filterKey)
}
