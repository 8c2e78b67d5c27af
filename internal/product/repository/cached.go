package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/internal/model"
	"github.com/Nomet5/cake-app-sub003/internal/product"
	"github.com/Nomet5/cake-app-sub003/internal/product/dto"
	"github.com/Nomet5/cake-app-sub003/pkg/cache"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

const cacheEntity = "products"

// CachedRepository keeps raw product records in Redis. Views are still derived
// per request, so time based flags never go stale. Availability is only as
// fresh as the invalidation events: a product made unavailable stays listed
// until a ProductChanged event clears the entry or the TTL expires.
type CachedRepository struct {
	next   product.Repository
	cache  *cache.RedisClient
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewCachedRepository(next product.Repository, c *cache.RedisClient, ttl time.Duration, log logger.ZapLogger) *CachedRepository {
	return &CachedRepository{next: next, cache: c, ttl: ttl, logger: log}
}

type cachedPage struct {
	Products []model.ProductRecord
	Count    int
}

func (r *CachedRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.ProductRecord, int, error) {
	key, err := cache.Key(cacheEntity, f)
	if err != nil {
		r.logger.Warn("failed to build product cache key", zap.Error(err))
	}

	page, err := cache.ReadThrough(ctx, r.cache, key, r.ttl,
		func(ctx context.Context) (cachedPage, error) {
			products, count, err := r.next.FindAll(ctx, f)
			return cachedPage{Products: products, Count: count}, err
		},
		func(err error) {
			r.logger.Warn("product cache unavailable", zap.String("key", key), zap.Error(err))
		})
	if err != nil {
		return nil, 0, err
	}
	return page.Products, page.Count, nil
}
