package chef

import (
	"context"

	"github.com/Nomet5/cake-app-sub003/internal/chef/dto"
	"github.com/Nomet5/cake-app-sub003/internal/model"
)

// DefaultLimit applies when a listing asks for no positive limit.
const DefaultLimit = 50

type Repository interface {
	// FindPublic returns active, verified chefs by business name with their
	// owner's contact fields and counters, plus the total before paging.
	FindPublic(ctx context.Context, filters *dto.ChefFilters) ([]model.ChefRecord, int, error)
}
