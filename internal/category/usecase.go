package category

import (
	"context"

	"github.com/Nomet5/cake-app-sub003/internal/category/dto"
)

type UseCase interface {
	ListCategories(ctx context.Context) ([]dto.CategoryView, error)
}
