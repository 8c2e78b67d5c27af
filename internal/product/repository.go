package product

import (
	"context"

	"github.com/Nomet5/cake-app-sub003/internal/model"
	"github.com/Nomet5/cake-app-sub003/internal/product/dto"
)

type Repository interface {
	// FindAll returns available products matching filters with relations joined,
	// plus the number of matches before limit/offset.
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductRecord, int, error)
}
