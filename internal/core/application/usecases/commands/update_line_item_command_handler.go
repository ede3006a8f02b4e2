package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// UpdateLineItemCommandHandler applies a line item mutation, resolving product
// references against the session's catalog snapshot.
type UpdateLineItemCommandHandler struct {
	store ports.SessionStore
}

// NewUpdateLineItemCommandHandler creates a handler for line item updates.
func NewUpdateLineItemCommandHandler(store ports.SessionStore) UpdateLineItemCommandHandler {
	return UpdateLineItemCommandHandler{store: store}
}

// Handle applies the mutation. A rejected mutation leaves the draft unchanged.
func (h UpdateLineItemCommandHandler) Handle(_ context.Context, cmd UpdateLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.store.Get(cmd.SessionID())
	if err != nil {
		return err
	}

	return s.Do(time.Now(), func(draft *order.Draft, snapshot *catalog.Snapshot) error {
		return draft.UpdateLineItem(cmd.Index(), cmd.Mutation(), snapshot)
	})
}
