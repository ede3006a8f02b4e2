package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand deletes the line item at a position.
type RemoveLineItemCommand struct {
	sessionTarget
	index int

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand creates the command.
func NewRemoveLineItemCommand(sessionID kernel.UUID, index int) (RemoveLineItemCommand, error) {
	cmd := RemoveLineItemCommand{
		index: index,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

// Index returns the position of the line item to remove.
func (c RemoveLineItemCommand) Index() int {
	return c.index
}
