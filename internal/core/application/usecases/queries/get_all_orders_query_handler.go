package queries

import (
	"context"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves all orders from the store.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for the all-orders query.
func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle returns all orders sorted by ascending id.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetAll(ctx)
}
