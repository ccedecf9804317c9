package commands

import (
	"context"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
)

// RemoveOrderCommandHandler deletes orders from the store. Removed ids are
// never reassigned to future orders.
type RemoveOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
func NewRemoveOrderCommandHandler(orders ports.OrderRepository) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{orders: orders}
}

// Handle deletes the order and returns the removed record, or an
// ObjectNotFoundError when the id is unknown.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Remove(ctx, cmd.OrderID())
}
