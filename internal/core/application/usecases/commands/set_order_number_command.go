package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrSetOrderNumberCommandIsNotConstructed = errors.New(
	"SetOrderNumberCommand must be created via NewSetOrderNumberCommand constructor",
)

// SetOrderNumberCommand carries the order number field as typed. The empty
// string is allowed here; it is only rejected at save.
type SetOrderNumberCommand struct {
	sessionTarget
	orderNumber string

	guard guard.ConstructorGuard
}

// NewSetOrderNumberCommand creates the command.
func NewSetOrderNumberCommand(sessionID kernel.UUID, orderNumber string) (SetOrderNumberCommand, error) {
	cmd := SetOrderNumberCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return SetOrderNumberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderNumberCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderNumberCommandIsNotConstructed)
}

// OrderNumber returns the requested order number.
func (c SetOrderNumberCommand) OrderNumber() string {
	return c.orderNumber
}
