package dto

// ChefFilters is the resolved public chef listing request.
type ChefFilters struct {
	Page  int
	Limit int
}

func (f *ChefFilters) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
