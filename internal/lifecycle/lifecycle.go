// Package lifecycle governs order status transitions. The two authorities
// are deliberately separate operations: customer cancellation is guarded by
// the current state, staff assignment is not. No optimistic concurrency
// token is kept, so two concurrent writers race at the storage layer and
// the last write wins.
package lifecycle

import (
	"fmt"

	"github.com/example/verda/internal/models"
)

// StateGuardError rejects a customer cancellation outside the cancellable
// states. The order is left unchanged.
type StateGuardError struct {
	Current models.OrderStatus
}

func (e *StateGuardError) Error() string {
	return fmt.Sprintf("order cannot be cancelled while %s", e.Current)
}

// InvalidStatusError rejects a staff assignment to an unknown status value.
type InvalidStatusError struct {
	Status models.OrderStatus
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("unknown order status %q", e.Status)
}

// CustomerCancel moves the order to cancelled, allowed only from pending or
// confirmed. Once shipped, delivered or cancelled, cancellation is
// permanently unavailable.
func CustomerCancel(o *models.Order) error {
	if !o.CanCancel() {
		return &StateGuardError{Current: o.Status}
	}
	o.Status = models.StatusCancelled
	return nil
}

// StaffAssign sets the order to any of the five statuses, regardless of the
// current one. Backward moves (shipped back to confirmed, say) are an
// operational escape hatch and stay allowed; only the status value itself
// is checked.
func StaffAssign(o *models.Order, status models.OrderStatus) error {
	if !status.IsValid() {
		return &InvalidStatusError{Status: status}
	}
	o.Status = status
	return nil
}
