package dto

// ChefParams is the raw chef listing input as received at the boundary.
type ChefParams struct {
	Limit string
	Page  string
}
