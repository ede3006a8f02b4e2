package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateLineItemCommandIsNotConstructed = errors.New(
	"UpdateLineItemCommand must be created via NewUpdateLineItemCommand constructor",
)

// UpdateLineItemCommand changes the line item at a position with one of the
// order.LineItemMutation variants.
//
// Example:
//
//	cmd, _ := NewUpdateLineItemCommand(sessionID, 0, order.SetQuantity{Quantity: 5})
//	err := handler.Handle(ctx, cmd)
type UpdateLineItemCommand struct {
	sessionTarget
	index    int
	mutation order.LineItemMutation

	guard guard.ConstructorGuard
}

// NewUpdateLineItemCommand creates the command. The index is checked against the
// draft when the command runs.
func NewUpdateLineItemCommand(
	sessionID kernel.UUID,
	index int,
	mutation order.LineItemMutation,
) (UpdateLineItemCommand, error) {
	cmd := UpdateLineItemCommand{
		index: index,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setMutation(mutation),
	); err != nil {
		return UpdateLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLineItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineItemCommandIsNotConstructed)
}

// Index returns the position of the line item to change.
func (c UpdateLineItemCommand) Index() int {
	return c.index
}

// Mutation returns the change to apply.
func (c UpdateLineItemCommand) Mutation() order.LineItemMutation {
	return c.mutation
}

func (c *UpdateLineItemCommand) setMutation(mutation order.LineItemMutation) error {
	if mutation == nil {
		return errs.NewValueIsRequiredError("mutation")
	}
	c.mutation = mutation
	return nil
}
