package models

import "time"

// Review is customer feedback on a product, dated after the order it
// came from.
type Review struct {
	ID         int       `json:"review_id" db:"review_id"`
	ProductID  int       `json:"product_id" db:"product_id"`
	CustomerID int       `json:"customer_id" db:"customer_id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewText string    `json:"review_text" db:"review_text"`
	ReviewDate time.Time `json:"review_date" db:"review_date"`
}
