package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/category"
	"github.com/Nomet5/cake-app-sub003/internal/category/dto"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]dto.CategoryView, error) {
	records, err := uc.repo.FindActive(ctx)
	if err != nil {
		if apperr.Classify(err) == apperr.KindUnknown {
			err = apperr.Repository("list", "categories", err)
		}
		uc.logger.Error("failed to list categories", zap.Error(err))
		return nil, err
	}

	views := make([]dto.CategoryView, 0, len(records))
	for _, c := range records {
		views = append(views, dto.CategoryView{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			SortOrder:    c.SortOrder,
			ProductCount: c.ProductCount,
		})
	}
	return views, nil
}
