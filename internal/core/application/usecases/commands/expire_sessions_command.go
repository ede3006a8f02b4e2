package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrExpireSessionsCommandIsNotConstructed = errors.New(
	"ExpireSessionsCommand must be created via NewExpireSessionsCommand constructor",
)

// ExpireSessionsCommand sweeps the session registry. It is parameterless; the
// idle timeout belongs to the handler.
type ExpireSessionsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireSessionsCommand creates the command.
func NewExpireSessionsCommand() ExpireSessionsCommand {
	return ExpireSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireSessionsCommandIsNotConstructed)
}
