package commands

import (
	"context"
	"time"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies status changes to stored orders.
// The transition function is unconstrained: any valid status can be set from
// any current status. Only the status and updatedAt fields change.
type ChangeOrderStatusCommandHandler struct {
	orders ports.OrderRepository
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(orders ports.OrderRepository) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{orders: orders}
}

// Handle moves the order to the requested status and returns the updated
// order. Returns an ObjectNotFoundError when the order id is unknown; the
// store is left untouched in that case.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.NewStatus(), time.Now()); err != nil {
		return nil, err
	}

	if err = h.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}
