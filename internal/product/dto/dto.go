package dto

// ProductFilters is the normalized predicate the repository executes.
// Produced by filter.Resolver; the repository always adds is_available.
type ProductFilters struct {
	Search     string   // matched case-insensitively against name OR description
	Category   string   // exact name, only honoured when Categories is empty
	Categories []string // any-of
	SortBy     string   // name, price, created_at
	SortOrder  string   // asc, desc
	Page       int
	Limit      int
}

// CategoryNames returns the effective category set. Categories wins over Category.
func (f *ProductFilters) CategoryNames() []string {
	if len(f.Categories) > 0 {
		return f.Categories
	}
	if f.Category != "" {
		return []string{f.Category}
	}
	return nil
}

func (f *ProductFilters) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
