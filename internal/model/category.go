package model

type Category struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	SortOrder   int     `db:"sort_order" json:"sort_order"`
	IsActive    bool    `db:"is_active" json:"is_active"`
}

type CategoryRecord struct {
	Category
	ProductCount int `db:"product_count" json:"product_count"` // available products only
}
