package orders

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/verda/internal/models"
)

func sampleOrder() *models.Order {
	o := &models.Order{
		UserID:        uuid.New(),
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Items: []models.OrderItem{
			{ProductID: "1", Name: "Bamboo Tumbler", UnitPrice: 250, Quantity: 2, Color: "Pink"},
			{ProductID: "2", Name: "Jute Bag", UnitPrice: 120, Quantity: 1},
		},
		TotalAmount:     620,
		ShippingAddress: models.ShippingAddress{Phone: "9876543210"},
		PaymentMethod:   PaymentMethodCOD,
		Status:          models.StatusPending,
	}
	o.ID = uuid.New()
	return o
}

func TestOrderNumberDerivedFromID(t *testing.T) {
	o := sampleOrder()
	number := o.OrderNumber()

	assert.Len(t, number, 8)
	assert.Equal(t, strings.ToUpper(number), number)
	assert.Equal(t, number, o.OrderNumber(), "derivation must be deterministic")

	hex := strings.ReplaceAll(o.ID.String(), "-", "")
	assert.Equal(t, strings.ToUpper(hex[len(hex)-8:]), number)
}

func TestViewDecoratesDerivedFields(t *testing.T) {
	o := sampleOrder()
	view := NewView(o)

	assert.Equal(t, o.OrderNumber(), view.OrderNumber)
	assert.Equal(t, 3, view.ItemCount)
	assert.True(t, view.CanCancel)
	assert.Equal(t, "₹620", view.DisplayTotal)
}

func TestViewCanCancelPerStatus(t *testing.T) {
	expected := map[models.OrderStatus]bool{
		models.StatusPending:   true,
		models.StatusConfirmed: true,
		models.StatusShipped:   false,
		models.StatusDelivered: false,
		models.StatusCancelled: false,
	}

	for status, want := range expected {
		o := sampleOrder()
		o.Status = status
		assert.Equal(t, want, NewView(o).CanCancel, "status %s", status)
	}
}

func TestStaffViewSharesCustomerDisplayFields(t *testing.T) {
	o := sampleOrder()

	customerView := NewView(o)
	staffView := NewStaffView(o)

	// both surfaces must label the same order identically
	assert.Equal(t, customerView.OrderNumber, staffView.OrderNumber)
	assert.Equal(t, customerView.ItemCount, staffView.ItemCount)
	assert.Equal(t, customerView.DisplayTotal, staffView.DisplayTotal)

	assert.Equal(t, o.UserID, staffView.Customer.ID)
	assert.Equal(t, "Asha Rao", staffView.Customer.Name)
	assert.Equal(t, "asha@example.com", staffView.Customer.Email)
}

func TestMatchesSearch(t *testing.T) {
	o := sampleOrder()

	assert.True(t, MatchesSearch(o, ""))
	assert.True(t, MatchesSearch(o, "  "))
	assert.True(t, MatchesSearch(o, "asha"))
	assert.True(t, MatchesSearch(o, "ASHA@EXAMPLE.COM"))
	assert.True(t, MatchesSearch(o, "98765"))
	assert.True(t, MatchesSearch(o, strings.ToLower(o.OrderNumber())))
	assert.False(t, MatchesSearch(o, "nonexistent"))
	assert.False(t, MatchesSearch(o, "0000000000"))
}

func TestParseUserRefAcceptsRawAndStringifiedForms(t *testing.T) {
	id := uuid.New()

	parsed, err := ParseUserRef(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	parsed, err = ParseUserRef(`"` + id.String() + `"`)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseUserRef("not-a-uuid")
	assert.Error(t, err)
}
