package models

// OrderItem is one line of an order. LineTotal is
// round(quantity * unit_price * (1 - discount), 2).
type OrderItem struct {
	ID        int     `json:"order_item_id" db:"order_item_id"`
	OrderID   int     `json:"order_id" db:"order_id"`
	ProductID int     `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
	Discount  float64 `json:"discount" db:"discount"`
	LineTotal float64 `json:"line_total" db:"line_total"`
}
