package chef

import (
	"context"

	"github.com/Nomet5/cake-app-sub003/internal/chef/dto"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
)

type UseCase interface {
	ListChefs(ctx context.Context, params dto.ChefParams) ([]dto.ChefView, envelope.Pagination, error)
}
