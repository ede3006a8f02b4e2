package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// SetOrderNumberCommandHandler edits the order number of the session's draft.
type SetOrderNumberCommandHandler struct {
	store ports.SessionStore
}

// NewSetOrderNumberCommandHandler creates a handler for order number edits.
func NewSetOrderNumberCommandHandler(store ports.SessionStore) SetOrderNumberCommandHandler {
	return SetOrderNumberCommandHandler{store: store}
}

// Handle sets the order number.
//
// Returns:
//   - order.ErrOrderLocked if the draft is Completed
//   - order.ErrOrderNumberImmutable if the order is already stored
//   - order.ErrInvalidOrderNumber if the value has characters other than letters and digits
func (h SetOrderNumberCommandHandler) Handle(_ context.Context, cmd SetOrderNumberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.store.Get(cmd.SessionID())
	if err != nil {
		return err
	}

	return s.Do(time.Now(), func(draft *order.Draft, _ *catalog.Snapshot) error {
		return draft.SetOrderNumber(cmd.OrderNumber())
	})
}
