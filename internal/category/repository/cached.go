package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/internal/category"
	"github.com/Nomet5/cake-app-sub003/internal/model"
	"github.com/Nomet5/cake-app-sub003/pkg/cache"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

const cacheEntity = "categories"

type CachedRepository struct {
	next   category.Repository
	cache  *cache.RedisClient
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewCachedRepository(next category.Repository, c *cache.RedisClient, ttl time.Duration, log logger.ZapLogger) *CachedRepository {
	return &CachedRepository{next: next, cache: c, ttl: ttl, logger: log}
}

func (r *CachedRepository) FindActive(ctx context.Context) ([]model.CategoryRecord, error) {
	key, err := cache.Key(cacheEntity, "active")
	if err != nil {
		r.logger.Warn("failed to build category cache key", zap.Error(err))
	}

	return cache.ReadThrough(ctx, r.cache, key, r.ttl, r.next.FindActive,
		func(err error) {
			r.logger.Warn("category cache unavailable", zap.String("key", key), zap.Error(err))
		})
}
