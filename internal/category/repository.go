package category

import (
	"context"

	"github.com/Nomet5/cake-app-sub003/internal/model"
)

type Repository interface {
	// FindActive returns active categories by sort order then name, each with
	// the number of available products in it.
	FindActive(ctx context.Context) ([]model.CategoryRecord, error)
}
