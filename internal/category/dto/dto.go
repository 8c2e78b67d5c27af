package dto

// CategoryView is a public category row.
type CategoryView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	SortOrder    int     `json:"sortOrder"`
	ProductCount int     `json:"productCount"`
}
