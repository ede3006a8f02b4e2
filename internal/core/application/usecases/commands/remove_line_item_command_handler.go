package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// RemoveLineItemCommandHandler removes a line item from the session's draft.
type RemoveLineItemCommandHandler struct {
	store ports.SessionStore
}

// NewRemoveLineItemCommandHandler creates a handler for line item removal.
func NewRemoveLineItemCommandHandler(store ports.SessionStore) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{store: store}
}

// Handle removes the item.
func (h RemoveLineItemCommandHandler) Handle(_ context.Context, cmd RemoveLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.store.Get(cmd.SessionID())
	if err != nil {
		return err
	}

	return s.Do(time.Now(), func(draft *order.Draft, _ *catalog.Snapshot) error {
		return draft.RemoveLineItem(cmd.Index())
	})
}
