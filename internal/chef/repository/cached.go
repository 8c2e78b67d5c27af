package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/internal/chef"
	"github.com/Nomet5/cake-app-sub003/internal/chef/dto"
	"github.com/Nomet5/cake-app-sub003/internal/model"
	"github.com/Nomet5/cake-app-sub003/pkg/cache"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

const cacheEntity = "chefs"

type CachedRepository struct {
	next   chef.Repository
	cache  *cache.RedisClient
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewCachedRepository(next chef.Repository, c *cache.RedisClient, ttl time.Duration, log logger.ZapLogger) *CachedRepository {
	return &CachedRepository{next: next, cache: c, ttl: ttl, logger: log}
}

type cachedPage struct {
	Chefs []model.ChefRecord
	Count int
}

func (r *CachedRepository) FindPublic(ctx context.Context, f *dto.ChefFilters) ([]model.ChefRecord, int, error) {
	key, err := cache.Key(cacheEntity, f)
	if err != nil {
		r.logger.Warn("failed to build chef cache key", zap.Error(err))
	}

	page, err := cache.ReadThrough(ctx, r.cache, key, r.ttl,
		func(ctx context.Context) (cachedPage, error) {
			chefs, count, err := r.next.FindPublic(ctx, f)
			return cachedPage{Chefs: chefs, Count: count}, err
		},
		func(err error) {
			r.logger.Warn("chef cache unavailable", zap.String("key", key), zap.Error(err))
		})
	if err != nil {
		return nil, 0, err
	}
	return page.Chefs, page.Count, nil
}
