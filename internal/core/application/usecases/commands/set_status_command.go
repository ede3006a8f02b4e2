package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrSetStatusCommandIsNotConstructed = errors.New(
	"SetStatusCommand must be created via NewSetStatusCommand constructor",
)

// SetStatusCommand selects a status for the draft.
type SetStatusCommand struct {
	sessionTarget
	status order.Status

	guard guard.ConstructorGuard
}

// NewSetStatusCommand creates the command. The status must be Pending,
// InProgress or Completed.
func NewSetStatusCommand(sessionID kernel.UUID, status order.Status) (SetStatusCommand, error) {
	cmd := SetStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setStatus(status),
	); err != nil {
		return SetStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStatusCommandIsNotConstructed)
}

// Status returns the selected status.
func (c SetStatusCommand) Status() order.Status {
	return c.status
}

func (c *SetStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
