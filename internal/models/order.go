package models

import "time"

// Order references a customer and carries shipping details. TotalAmount
// starts at zero and is filled in once after line items are generated.
type Order struct {
	ID              int       `json:"order_id" db:"order_id"`
	CustomerID      int       `json:"customer_id" db:"customer_id"`
	OrderDate       time.Time `json:"order_date" db:"order_date"`
	Status          string    `json:"status" db:"status"`
	PaymentMethod   string    `json:"payment_method" db:"payment_method"`
	ShippingAddress string    `json:"shipping_address" db:"shipping_address"`
	ShippingCity    string    `json:"shipping_city" db:"shipping_city"`
	ShippingState   string    `json:"shipping_state" db:"shipping_state"`
	ShippingZip     string    `json:"shipping_zip" db:"shipping_zip"`
	ShippingCountry string    `json:"shipping_country" db:"shipping_country"`
	TotalAmount     float64   `json:"total_amount" db:"total_amount"`
}
