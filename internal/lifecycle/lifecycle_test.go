package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/verda/internal/models"
)

func TestCustomerCancelAllowedStates(t *testing.T) {
	for _, status := range []models.OrderStatus{models.StatusPending, models.StatusConfirmed} {
		order := &models.Order{Status: status}

		require.NoError(t, CustomerCancel(order))
		assert.Equal(t, models.StatusCancelled, order.Status)
		assert.False(t, order.CanCancel())
	}
}

func TestCustomerCancelGuardedStates(t *testing.T) {
	for _, status := range []models.OrderStatus{models.StatusShipped, models.StatusDelivered, models.StatusCancelled} {
		order := &models.Order{Status: status}

		err := CustomerCancel(order)

		var guardErr *StateGuardError
		require.ErrorAs(t, err, &guardErr, "status %s must be guarded", status)
		assert.Equal(t, status, guardErr.Current)
		assert.Equal(t, status, order.Status, "order must be left unchanged")
	}
}

func TestStaffAssignUnconstrained(t *testing.T) {
	// staff may move between any pair of states, backward included
	for _, from := range models.AllStatuses {
		for _, to := range models.AllStatuses {
			order := &models.Order{Status: from}

			require.NoError(t, StaffAssign(order, to))
			assert.Equal(t, to, order.Status)
		}
	}
}

func TestStaffAssignRejectsUnknownStatus(t *testing.T) {
	order := &models.Order{Status: models.StatusPending}

	err := StaffAssign(order, "refunded")

	var statusErr *InvalidStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, models.StatusDelivered.IsTerminal())
	assert.True(t, models.StatusCancelled.IsTerminal())
	assert.False(t, models.StatusPending.IsTerminal())
	assert.False(t, models.StatusConfirmed.IsTerminal())
	assert.False(t, models.StatusShipped.IsTerminal())
}
