package models

import "time"

// Customer is a registered shopper. Email is unique across the table.
type Customer struct {
	ID               int       `json:"customer_id" db:"customer_id"`
	FirstName        string    `json:"first_name" db:"first_name"`
	LastName         string    `json:"last_name" db:"last_name"`
	Email            string    `json:"email" db:"email"`
	Phone            string    `json:"phone" db:"phone"`
	Address          string    `json:"address" db:"address"`
	City             string    `json:"city" db:"city"`
	State            string    `json:"state" db:"state"`
	Zip              string    `json:"zip" db:"zip"`
	Country          string    `json:"country" db:"country"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
}
