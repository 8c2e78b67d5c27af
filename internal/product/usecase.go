package product

import (
	"context"

	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context, params dto.ListParams) ([]dto.ProductView, envelope.Pagination, error)
}
