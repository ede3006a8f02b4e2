package commands

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrOpenSessionCommandIsNotConstructed = errors.New(
	"OpenSessionCommand must be created via NewOpenSessionCommand constructor",
)

// OpenSessionCommand starts editing either a new order or a stored one.
//
// Example:
//
//	cmd, _ := NewOpenSessionCommand(nil) // new order
//	id := order.OrderID(42)
//	cmd, _ = NewOpenSessionCommand(&id) // edit order 42
//	sessionID, err := handler.Handle(ctx, cmd)
type OpenSessionCommand struct {
	orderID *order.OrderID

	guard guard.ConstructorGuard
}

// NewOpenSessionCommand creates the command. A nil orderID opens a new order.
func NewOpenSessionCommand(orderID *order.OrderID) (OpenSessionCommand, error) {
	cmd := OpenSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID != nil {
		if *orderID <= 0 {
			return OpenSessionCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"orderId", fmt.Errorf("%d is not greater than 0", *orderID))
		}
		id := *orderID
		cmd.orderID = &id
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenSessionCommand) Validate() error {
	return c.guard.Validate(ErrOpenSessionCommandIsNotConstructed)
}

// OrderID returns the stored order to edit and whether one was requested.
func (c OpenSessionCommand) OrderID() (order.OrderID, bool) {
	if c.orderID == nil {
		return 0, false
	}
	return *c.orderID, true
}
