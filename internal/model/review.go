package model

type Review struct {
	BaseModel
	ProductID string  `db:"product_id" json:"product_id"`
	UserID    *string `db:"user_id" json:"user_id"`
	Rating    int     `db:"rating" json:"rating"`
	Comment   *string `db:"comment" json:"comment"`
}
