package model

type User struct {
	BaseModel
	FirstName string  `db:"first_name" json:"first_name"`
	LastName  *string `db:"last_name" json:"last_name"`
	Email     string  `db:"email" json:"email"`
	Phone     *string `db:"phone" json:"phone"`
}

type Chef struct {
	BaseModel
	UserID       string  `db:"user_id" json:"user_id"`
	BusinessName string  `db:"business_name" json:"business_name"`
	Specialty    *string `db:"specialty" json:"specialty"`
	Description  *string `db:"description" json:"description"`
	IsActive     bool    `db:"is_active" json:"is_active"`
	IsVerified   bool    `db:"is_verified" json:"is_verified"`
}

// ChefRecord is a chef joined with the owning user's contact fields and
// aggregate counters.
type ChefRecord struct {
	Chef
	FirstName     *string  `db:"first_name" json:"first_name"`
	LastName      *string  `db:"last_name" json:"last_name"`
	Email         *string  `db:"email" json:"email"`
	Phone         *string  `db:"phone" json:"phone"`
	ProductCount  int      `db:"product_count" json:"product_count"`
	ReviewCount   int      `db:"review_count" json:"review_count"`
	AverageRating *float64 `db:"average_rating" json:"average_rating"`
}
