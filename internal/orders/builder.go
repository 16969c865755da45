// Package orders builds persisted orders from validated checkout drafts and
// shapes them for the customer and staff read sides.
package orders

import (
	"github.com/google/uuid"

	"github.com/example/verda/internal/cart"
	"github.com/example/verda/internal/models"
)

// PaymentMethodCOD is the only payment method this store accepts.
const PaymentMethodCOD = "cod"

// Customer is the opaque acting-user identity handed in by the session
// layer. The core never validates credentials itself.
type Customer struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Build converts a validated draft into a fresh Order. Lines and the
// shipping address are copied by value, so later mutation of the live cart
// or profile never reaches the stored order. The total is computed once,
// here, from the snapshot.
//
// Build does not deduplicate: a duplicate network retry after a successful
// submission creates a second order. Known gap, intentionally left as-is.
func Build(customer Customer, lines []cart.LineItem, addr models.ShippingAddress) *models.Order {
	items := make([]models.OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Image:     line.Image,
			Quantity:  line.Quantity,
			Color:     line.Color,
		})
		total += line.UnitPrice * float64(line.Quantity)
	}

	return &models.Order{
		UserID:          customer.ID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: addr,
		PaymentMethod:   PaymentMethodCOD,
		Status:          models.StatusPending,
	}
}
