package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/internal/product"
	"github.com/Nomet5/cake-app-sub003/internal/product/derive"
	"github.com/Nomet5/cake-app-sub003/internal/product/dto"
	"github.com/Nomet5/cake-app-sub003/internal/product/filter"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

type productUseCase struct {
	repo     product.Repository
	resolver *filter.Resolver
	engine   *derive.Engine
	logger   logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, resolver *filter.Resolver, engine *derive.Engine, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:     repo,
		resolver: resolver,
		engine:   engine,
		logger:   log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context, params dto.ListParams) ([]dto.ProductView, envelope.Pagination, error) {
	filters := uc.resolver.Resolve(params)

	records, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		if apperr.Classify(err) == apperr.KindUnknown {
			err = apperr.Repository("list", "products", err)
		}
		uc.logger.Error("failed to list products",
			zap.String("search", filters.Search),
			zap.Strings("categories", filters.CategoryNames()),
			zap.Error(err),
		)
		return nil, envelope.Pagination{}, err
	}

	views := make([]dto.ProductView, 0, len(records))
	for _, rec := range records {
		view, warnings := uc.engine.Derive(rec)
		for _, w := range warnings {
			uc.logger.Warn("product view used fallback",
				zap.String("product_id", w.ProductID),
				zap.String("field", w.Field),
				zap.String("fallback", w.Fallback),
			)
		}
		views = append(views, view)
	}

	return views, envelope.Paginate(filters.Page, filters.Limit, count, filter.DefaultLimit), nil
}
