package models

import "time"

// Product is a catalog entry. Cost is derived from price and a drawn
// margin, so (Price-Cost)/Price always stays inside the configured band.
type Product struct {
	ID            int       `json:"product_id" db:"product_id"`
	Name          string    `json:"name" db:"name"`
	Category      string    `json:"category" db:"category"`
	Subcategory   string    `json:"subcategory" db:"subcategory"`
	Price         float64   `json:"price" db:"price"`
	Cost          float64   `json:"cost" db:"cost"`
	StockQuantity int       `json:"stock_quantity" db:"stock_quantity"`
	Supplier      string    `json:"supplier" db:"supplier"`
	CreatedDate   time.Time `json:"created_date" db:"created_date"`
}

// Margin returns the profit margin (price - cost) / price.
func (p *Product) Margin() float64 {
	if p.Price == 0 {
		return 0
	}
	return (p.Price - p.Cost) / p.Price
}
