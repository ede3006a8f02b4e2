package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// SaveOrderResult reports where the draft was written.
type SaveOrderResult struct {
	OrderID order.OrderID
	Created bool
}

// SaveOrderCommandHandler validates and persists a session's draft.
//
// Workflow:
//   - ValidateOrder runs first; a violation is returned without any gateway call
//   - A draft with a persisted id is sent with Update, any other with Create
//   - A gateway failure is returned as ports.ErrGatewayFailure and the session stays
//     open with the draft untouched, so the user can retry
//   - On success the session is closed and an order-saved event is published
//
// The session lock is held across the gateway call, so a save never overlaps
// another save or a mutation of the same draft.
type SaveOrderCommandHandler struct {
	store     ports.SessionStore
	orders    ports.OrdersGateway
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewSaveOrderCommandHandler creates a handler for saving drafts.
func NewSaveOrderCommandHandler(
	store ports.SessionStore,
	ordersGateway ports.OrdersGateway,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) SaveOrderCommandHandler {
	return SaveOrderCommandHandler{
		store:     store,
		orders:    ordersGateway,
		publisher: publisher,
		logger:    logger.With("component", "save_order_handler"),
	}
}

// Handle saves the draft and ends the session.
func (h SaveOrderCommandHandler) Handle(ctx context.Context, cmd SaveOrderCommand) (SaveOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SaveOrderResult{}, err
	}

	s, err := h.store.Get(cmd.SessionID())
	if err != nil {
		return SaveOrderResult{}, err
	}

	var (
		result SaveOrderResult
		event  ports.OrderSaved
	)

	err = s.Finish(time.Now(), func(draft *order.Draft, _ *catalog.Snapshot) error {
		if err := order.ValidateOrder(draft); err != nil {
			return err
		}

		saved, err := h.persist(ctx, draft)
		if err != nil {
			return err
		}

		result = saved
		event = ports.OrderSaved{
			OrderID:     saved.OrderID,
			OrderNumber: draft.OrderNumber(),
			Status:      draft.Status().String(),
			ItemCount:   draft.ItemCount(),
			FinalPrice:  draft.FinalPrice().String(),
			Created:     saved.Created,
			SavedAt:     time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return SaveOrderResult{}, err
	}

	h.logger.InfoContext(ctx, "order saved",
		"session_id", cmd.SessionID().String(),
		"order_id", int64(result.OrderID),
		"created", result.Created,
	)

	if err = h.publisher.PublishOrderSaved(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order saved event",
			"order_id", int64(result.OrderID),
			"error", err,
		)
	}

	return result, nil
}

func (h SaveOrderCommandHandler) persist(ctx context.Context, draft *order.Draft) (SaveOrderResult, error) {
	if id, ok := draft.PersistedID(); ok {
		if err := h.orders.Update(ctx, id, draft); err != nil {
			return SaveOrderResult{}, gatewayError(err)
		}
		return SaveOrderResult{OrderID: id}, nil
	}

	id, err := h.orders.Create(ctx, draft)
	if err != nil {
		return SaveOrderResult{}, gatewayError(err)
	}

	if err = draft.AssignID(id); err != nil {
		// The remote order exists but cannot be tracked; a retry would create another.
		h.logger.ErrorContext(ctx, "order created but returned id is unusable",
			"returned_id", int64(id),
			"order_number", draft.OrderNumber(),
			"error", err,
		)
		return SaveOrderResult{}, gatewayError(fmt.Errorf("orders service returned unusable id: %w", err))
	}

	return SaveOrderResult{OrderID: id, Created: true}, nil
}
