package models

import (
	"strings"

	"github.com/google/uuid"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// AllStatuses lists every status in display order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// IsValid reports whether s is one of the five known statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are accepted from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Order is the persisted result of a checkout. Items and the shipping
// address are frozen copies taken at creation time; TotalAmount is computed
// once and never recomputed, even if catalog prices change afterwards.
type Order struct {
	BaseModel
	UserID          uuid.UUID       `gorm:"type:uuid;index" json:"user_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	Items           []OrderItem     `json:"items,omitempty"`
	TotalAmount     float64         `json:"total_amount"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	Status          OrderStatus     `gorm:"type:varchar(16);index" json:"status"`
}

// OrderItem is a frozen cart line attached to an order.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	Color     string    `json:"color"`
}

// OrderNumber derives the human-readable display number from the order id.
// Deterministic, so it needs no collision bookkeeping of its own.
func (o *Order) OrderNumber() string {
	hex := strings.ReplaceAll(o.ID.String(), "-", "")
	if len(hex) <= 8 {
		return strings.ToUpper(hex)
	}
	return strings.ToUpper(hex[len(hex)-8:])
}

// CanCancel reports whether the owning customer may still cancel the order.
func (o *Order) CanCancel() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}

// ItemCount returns the total number of units across all lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
