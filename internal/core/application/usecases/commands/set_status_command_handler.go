package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// SetStatusCommandHandler selects the status of the session's draft.
type SetStatusCommandHandler struct {
	store ports.SessionStore
}

// NewSetStatusCommandHandler creates a handler for status changes.
func NewSetStatusCommandHandler(store ports.SessionStore) SetStatusCommandHandler {
	return SetStatusCommandHandler{store: store}
}

// Handle sets the status.
func (h SetStatusCommandHandler) Handle(_ context.Context, cmd SetStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.store.Get(cmd.SessionID())
	if err != nil {
		return err
	}

	return s.Do(time.Now(), func(draft *order.Draft, _ *catalog.Snapshot) error {
		return draft.SetStatus(cmd.Status())
	})
}
