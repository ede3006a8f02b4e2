package ports

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// OrderSaved describes an order that was just written to the Orders service.
type OrderSaved struct {
	OrderID     order.OrderID
	OrderNumber string
	Status      string
	ItemCount   int
	FinalPrice  string
	Created     bool
	SavedAt     time.Time
}

// EventPublisher announces saved orders. Publishing is best effort: a failure is
// logged by the caller and never undoes the save.
type EventPublisher interface {
	PublishOrderSaved(ctx context.Context, event OrderSaved) error
}
