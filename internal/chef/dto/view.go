package dto

// ChefView is the public chef card. DeliveryTime and Distance are fixed
// placeholders until delivery zones exist.
type ChefView struct {
	ID           string  `json:"id"`
	BusinessName string  `json:"businessName"`
	Specialty    *string `json:"specialty"`
	Description  *string `json:"description"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	Products     int     `json:"products"`
	DeliveryTime string  `json:"deliveryTime"`
	Distance     string  `json:"distance"`
	IsVerified   bool    `json:"isVerified"`
}
