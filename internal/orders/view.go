package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/verda/internal/models"
	"github.com/example/verda/internal/utils"
)

// View is the shape both read sides share, so customer and staff always see
// the same labels for the same order. CanCancel is derived from the current
// status on every read, never stored.
type View struct {
	ID              uuid.UUID              `json:"id"`
	OrderNumber     string                 `json:"order_number"`
	Items           []models.OrderItem     `json:"items"`
	ItemCount       int                    `json:"item_count"`
	TotalAmount     float64                `json:"total_amount"`
	DisplayTotal    string                 `json:"display_total"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	Status          models.OrderStatus     `json:"status"`
	CanCancel       bool                   `json:"can_cancel"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// CustomerRef is the denormalized identity shown on the staff view.
type CustomerRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// StaffView decorates the shared view with the customer identity.
type StaffView struct {
	View
	Customer CustomerRef `json:"customer"`
}

// NewView shapes an order for the customer read side.
func NewView(o *models.Order) View {
	return View{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber(),
		Items:           o.Items,
		ItemCount:       o.ItemCount(),
		TotalAmount:     o.TotalAmount,
		DisplayTotal:    utils.FormatINR(o.TotalAmount),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
		CanCancel:       o.CanCancel(),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// NewStaffView shapes an order for the staff read side.
func NewStaffView(o *models.Order) StaffView {
	return StaffView{
		View: NewView(o),
		Customer: CustomerRef{
			ID:    o.UserID,
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
		},
	}
}

// MatchesSearch applies the staff free-text filter: case-insensitive
// substring over order number, customer name, customer email and shipping
// phone. Runs over the already-fetched set, not in SQL.
func MatchesSearch(o *models.Order, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)

	return strings.Contains(strings.ToLower(o.OrderNumber()), lower) ||
		strings.Contains(strings.ToLower(o.CustomerName), lower) ||
		strings.Contains(strings.ToLower(o.CustomerEmail), lower) ||
		strings.Contains(o.ShippingAddress.Phone, term)
}

// ParseUserRef accepts a user reference as a raw uuid or its quoted string
// form. Both shapes show up in practice.
func ParseUserRef(ref string) (uuid.UUID, error) {
	ref = strings.TrimSpace(ref)
	ref = strings.Trim(ref, `"`)
	return uuid.Parse(ref)
}
