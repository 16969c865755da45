package models

// User represents an authenticated customer.
type User struct {
	BaseModel
	Name            string          `json:"name"`
	Email           string          `gorm:"uniqueIndex" json:"email"`
	PasswordHash    string          `json:"-"`
	IsAdmin         bool            `json:"is_admin"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	Orders          []Order         `json:"orders,omitempty"`
}
