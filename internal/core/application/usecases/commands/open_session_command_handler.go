package commands

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/core/ports"
)

// OpenSessionCommandHandler loads the catalog, prepares the draft and registers
// a new editing session.
//
// A catalog that fails to load does not fail the open: the session starts with
// an unavailable snapshot and adding items is refused until a new session is
// opened. A stored order that cannot be loaded does fail it.
//
// Example:
//
//	handler := NewOpenSessionCommandHandler(catalogGateway, ordersGateway, store, logger)
//	cmd, _ := NewOpenSessionCommand(nil)
//	sessionID, err := handler.Handle(ctx, cmd)
type OpenSessionCommandHandler struct {
	catalog ports.ProductCatalogGateway
	orders  ports.OrdersGateway
	store   ports.SessionStore
	logger  *slog.Logger
}

// NewOpenSessionCommandHandler creates a handler for opening sessions.
func NewOpenSessionCommandHandler(
	catalogGateway ports.ProductCatalogGateway,
	ordersGateway ports.OrdersGateway,
	store ports.SessionStore,
	logger *slog.Logger,
) OpenSessionCommandHandler {
	return OpenSessionCommandHandler{
		catalog: catalogGateway,
		orders:  ordersGateway,
		store:   store,
		logger:  logger.With("component", "open_session_handler"),
	}
}

// Handle opens the session and returns its id.
func (h OpenSessionCommandHandler) Handle(ctx context.Context, cmd OpenSessionCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now()

	draft := order.NewDraft(now)
	if orderID, ok := cmd.OrderID(); ok {
		stored, err := h.orders.Get(ctx, orderID)
		if err != nil {
			return kernel.UUID{}, gatewayError(err)
		}
		draft = stored
	}

	s, err := session.New(kernel.NewUUID(), draft, h.loadSnapshot(ctx), now)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.store.Add(s); err != nil {
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "session opened",
		"session_id", s.ID().String(),
		"persisted", draft.IsPersisted(),
	)
	return s.ID(), nil
}

func (h OpenSessionCommandHandler) loadSnapshot(ctx context.Context) *catalog.Snapshot {
	products, err := h.catalog.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "product catalog unavailable", "error", err)
		return catalog.UnavailableSnapshot()
	}

	snapshot, err := catalog.NewSnapshot(products)
	if err != nil {
		h.logger.WarnContext(ctx, "product catalog rejected", "error", err)
		return catalog.UnavailableSnapshot()
	}

	return snapshot
}
