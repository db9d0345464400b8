package models

import "gorm.io/datatypes"

// Customer is an immutable snapshot of a WooCommerce customer at fetch time.
type Customer struct {
	ID          int     `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	OrdersCount int     `json:"orders_count"`
	TotalSpent  string  `json:"total_spent"`
	DateCreated WooTime `json:"date_created"`

	RawData datatypes.JSON `json:"raw_data,omitempty"`
}

// FullName joins first and last names, falling back to the email local part
// when the store has no name on file.
func (cu *Customer) FullName() string {
	name := cu.FirstName
	if cu.LastName != "" {
		if name != "" {
			name += " "
		}
		name += cu.LastName
	}
	if name == "" {
		return cu.Email
	}
	return name
}
