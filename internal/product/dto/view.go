package dto

import "time"

// ProductView is the per-request presentation record of a product. It is
// computed from a model.ProductRecord and never stored.
type ProductView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Chef        string    `json:"chef"`
	ChefName    string    `json:"chefName"`
	Category    string    `json:"category"`
	Image       *string   `json:"image"` // nil means placeholder art
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	IsPopular   bool      `json:"isPopular"`
	IsNew       bool      `json:"isNew"`
	CreatedAt   time.Time `json:"createdAt"`
}
