package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// AddLineItemCommandHandler composes a line item from the session's catalog
// snapshot and appends it to the draft.
//
// The lifecycle guard runs before composition, so a Completed draft reports
// order.ErrOrderLocked even when the pick itself is also invalid.
type AddLineItemCommandHandler struct {
	store    ports.SessionStore
	composer services.LineItemComposer
}

// NewAddLineItemCommandHandler creates a handler for adding line items.
func NewAddLineItemCommandHandler(store ports.SessionStore, composer services.LineItemComposer) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		store:    store,
		composer: composer,
	}
}

// Handle adds the item.
func (h AddLineItemCommandHandler) Handle(_ context.Context, cmd AddLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.store.Get(cmd.SessionID())
	if err != nil {
		return err
	}

	return s.Do(time.Now(), func(draft *order.Draft, snapshot *catalog.Snapshot) error {
		if err := draft.EnsureMutable(); err != nil {
			return err
		}

		item, err := h.composer.Compose(snapshot, cmd.ProductID(), cmd.Quantity())
		if err != nil {
			return err
		}

		return draft.AddLineItem(item)
	})
}
