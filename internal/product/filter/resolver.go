package filter

import (
	"strings"

	"github.com/Nomet5/cake-app-sub003/internal/product/dto"
	"github.com/Nomet5/cake-app-sub003/internal/query"
)

const DefaultLimit = 50

// Resolver turns raw listing parameters into a repository predicate.
// It never touches storage.
type Resolver struct {
	defaultLimit int
}

func NewResolver(defaultLimit int) *Resolver {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return &Resolver{defaultLimit: defaultLimit}
}

func (r *Resolver) Resolve(p dto.ListParams) *dto.ProductFilters {
	f := &dto.ProductFilters{
		Search: strings.TrimSpace(p.Search),
		Limit:  query.PositiveInt(p.Limit, r.defaultLimit),
		Page:   query.PositiveInt(p.Page, 1),
	}

	// categories supersedes category, even when both are supplied
	if names := query.SplitNames(p.Categories); len(names) > 0 {
		f.Categories = names
	} else {
		f.Category = strings.TrimSpace(p.Category)
	}

	return f
}
