package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// DeleteOrderCommandHandler deletes a stored order through the Orders gateway.
type DeleteOrderCommandHandler struct {
	orders ports.OrdersGateway
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(ordersGateway ports.OrdersGateway) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: ordersGateway}
}

// Handle deletes the order. Sessions already editing it are left alone; their
// next save reports ports.ErrOrderNotFound.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.orders.Delete(ctx, cmd.OrderID()); err != nil {
		return gatewayError(err)
	}
	return nil
}
