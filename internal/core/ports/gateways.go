// Package ports defines the contracts between the order-composition core and the
// outside world: the product catalog, the Orders service, the session registry
// and the order-saved event sink.
package ports

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
)

var (
	// ErrGatewayFailure wraps any transport or backend failure of a gateway call.
	ErrGatewayFailure = errors.New("gateway failure")

	// ErrOrderNotFound is returned when the Orders service has no order under an id.
	ErrOrderNotFound = errors.New("order not found")
)

// ProductCatalogGateway loads the product catalog.
type ProductCatalogGateway interface {
	// List returns every product. Implementations wrap transport failures in
	// ErrGatewayFailure; callers treat any error as catalog.ErrCatalogUnavailable.
	List(ctx context.Context) ([]*catalog.Product, error)
}

// OrdersGateway persists orders.
//
// Implementations report missing orders with ErrOrderNotFound and every other
// failure with ErrGatewayFailure. Derived totals are sent as computed by the
// draft; totals reported back are ignored in favour of a recompute.
type OrdersGateway interface {
	// Get hydrates a stored order as a persisted Draft.
	Get(ctx context.Context, id order.OrderID) (*order.Draft, error)

	// Create stores a new order and returns the identifier assigned to it.
	Create(ctx context.Context, draft *order.Draft) (order.OrderID, error)

	// Update replaces the stored order with the draft's state. Last write wins.
	Update(ctx context.Context, id order.OrderID, draft *order.Draft) error

	// Delete removes a stored order.
	Delete(ctx context.Context, id order.OrderID) error
}
