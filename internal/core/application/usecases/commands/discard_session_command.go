package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrDiscardSessionCommandIsNotConstructed = errors.New(
	"DiscardSessionCommand must be created via NewDiscardSessionCommand constructor",
)

// DiscardSessionCommand abandons a session without saving.
type DiscardSessionCommand struct {
	sessionTarget

	guard guard.ConstructorGuard
}

// NewDiscardSessionCommand creates the command.
func NewDiscardSessionCommand(sessionID kernel.UUID) (DiscardSessionCommand, error) {
	cmd := DiscardSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return DiscardSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DiscardSessionCommand) Validate() error {
	return c.guard.Validate(ErrDiscardSessionCommandIsNotConstructed)
}
