package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrSaveOrderCommandIsNotConstructed = errors.New(
	"SaveOrderCommand must be created via NewSaveOrderCommand constructor",
)

// SaveOrderCommand validates the session's draft and writes it to the Orders
// service. A successful save ends the session.
type SaveOrderCommand struct {
	sessionTarget

	guard guard.ConstructorGuard
}

// NewSaveOrderCommand creates the command.
func NewSaveOrderCommand(sessionID kernel.UUID) (SaveOrderCommand, error) {
	cmd := SaveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return SaveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveOrderCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderCommandIsNotConstructed)
}
