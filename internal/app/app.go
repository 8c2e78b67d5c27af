// Package app wires repositories, the optional record cache and usecases
// from configuration. Every binary builds its catalog through it.
package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/config"
	"github.com/Nomet5/cake-app-sub003/internal/category"
	catRepoPkg "github.com/Nomet5/cake-app-sub003/internal/category/repository"
	catUCPkg "github.com/Nomet5/cake-app-sub003/internal/category/usecase"
	"github.com/Nomet5/cake-app-sub003/internal/chef"
	chefRepoPkg "github.com/Nomet5/cake-app-sub003/internal/chef/repository"
	chefUCPkg "github.com/Nomet5/cake-app-sub003/internal/chef/usecase"
	"github.com/Nomet5/cake-app-sub003/internal/product"
	"github.com/Nomet5/cake-app-sub003/internal/product/derive"
	"github.com/Nomet5/cake-app-sub003/internal/product/filter"
	prodRepoPkg "github.com/Nomet5/cake-app-sub003/internal/product/repository"
	prodUCPkg "github.com/Nomet5/cake-app-sub003/internal/product/usecase"
	"github.com/Nomet5/cake-app-sub003/pkg/cache"
	"github.com/Nomet5/cake-app-sub003/pkg/database"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

type Catalog struct {
	DB         *sqlx.DB
	Redis      *cache.RedisClient // nil unless REDIS_ENABLED
	Products   product.UseCase
	Categories category.UseCase
	Chefs      chef.UseCase
}

// New opens the database, connects Redis when enabled and builds the
// usecases. A Redis outage at startup only disables caching.
func New(ctx context.Context, cfg *config.Config, log logger.ZapLogger) (*Catalog, error) {
	db, err := database.Open(ctx, cfg.DB())
	if err != nil {
		return nil, err
	}
	log.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	return Build(ctx, db, cfg, log), nil
}

// Build wires usecases over an already open database.
func Build(ctx context.Context, db *sqlx.DB, cfg *config.Config, log logger.ZapLogger) *Catalog {
	var prodRepo product.Repository = prodRepoPkg.NewPGRepository(db)
	var catRepo category.Repository = catRepoPkg.NewPGRepository(db)
	var chefRepo chef.Repository = chefRepoPkg.NewPGRepository(db)

	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisClient(ctx, cfg.Cache())
		if err != nil {
			log.Warn("Could not connect to Redis, record cache disabled", zap.Error(err))
		} else {
			log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
			redisClient = rc
			ttl := cfg.CacheTTL()
			prodRepo = prodRepoPkg.NewCachedRepository(prodRepo, rc, ttl, log)
			catRepo = catRepoPkg.NewCachedRepository(catRepo, rc, ttl, log)
			chefRepo = chefRepoPkg.NewCachedRepository(chefRepo, rc, ttl, log)
		}
	}

	return &Catalog{
		DB:    db,
		Redis: redisClient,
		Products: prodUCPkg.NewProductUseCase(prodRepo,
			filter.NewResolver(cfg.Catalog.DefaultLimit), derive.NewEngine(cfg.DeriveOptions()), log),
		Categories: catUCPkg.NewCategoryUseCase(catRepo, log),
		Chefs:      chefUCPkg.NewChefUseCase(chefRepo, cfg.ChefOptions(), log),
	}
}

func (c *Catalog) Close() error {
	if c.Redis != nil {
		c.Redis.Close()
	}
	return c.DB.Close()
}
