package models

// Dataset holds the five generated tables in dependency order. Each
// table is built once by its stage and treated as read-only afterwards.
type Dataset struct {
	Products   []Product
	Customers  []Customer
	Orders     []Order
	OrderItems []OrderItem
	Reviews    []Review
}
