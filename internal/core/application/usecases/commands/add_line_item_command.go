package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand is the submit of the add-item form: a product pick and a
// quantity. Product and quantity are checked by composition, so a bad pick is
// reported as an invalid line item rather than a malformed command.
type AddLineItemCommand struct {
	sessionTarget
	productID catalog.ProductID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates the command.
func NewAddLineItemCommand(sessionID kernel.UUID, productID catalog.ProductID, quantity int) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// ProductID returns the picked product.
func (c AddLineItemCommand) ProductID() catalog.ProductID {
	return c.productID
}

// Quantity returns the requested quantity.
func (c AddLineItemCommand) Quantity() int {
	return c.quantity
}
