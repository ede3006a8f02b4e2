package commands

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes a stored order from the Orders service.
type DeleteOrderCommand struct {
	orderID order.OrderID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates the command.
func NewDeleteOrderCommand(orderID order.OrderID) (DeleteOrderCommand, error) {
	if orderID <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() order.OrderID {
	return c.orderID
}
