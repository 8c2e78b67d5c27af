package model

type Product struct {
	BaseModel
	ChefID      *string `db:"chef_id" json:"chef_id"`
	CategoryID  *string `db:"category_id" json:"category_id"` // Nullable
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	IsAvailable bool    `db:"is_available" json:"is_available"`
}

type ProductImage struct {
	ID        string `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"product_id"`
	URL       string `db:"url" json:"url"`
	IsPrimary bool   `db:"is_primary" json:"is_primary"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

// ProductRecord is a product row with its joined relations, as read by the
// catalog. Images and Ratings are filled by follow-up batch queries.
type ProductRecord struct {
	Product
	ChefName       *string        `db:"chef_name" json:"chef_name"`
	ChefFirstName  *string        `db:"chef_first_name" json:"chef_first_name"`
	CategoryName   *string        `db:"category_name" json:"category_name"`
	ReviewCount    int            `db:"review_count" json:"review_count"`
	OrderItemCount int            `db:"order_item_count" json:"order_item_count"`
	Images         []ProductImage `db:"-" json:"images"`
	Ratings        []int          `db:"-" json:"ratings"`
}

type OrderItem struct {
	ID        string `db:"id"`
	OrderID   string `db:"order_id"`
	ProductID string `db:"product_id"`
	Quantity  int    `db:"quantity"`
}
