package commands

import (
	"context"
	"time"

	"kirana/internal/core/ports"
)

// PurgeExpiredOrdersCommandHandler removes orders that fell out of the data
// retention window. Run periodically by the retention job.
type PurgeExpiredOrdersCommandHandler struct {
	orders ports.OrderRepository
}

// NewPurgeExpiredOrdersCommandHandler creates a handler for retention sweeps.
func NewPurgeExpiredOrdersCommandHandler(orders ports.OrderRepository) PurgeExpiredOrdersCommandHandler {
	return PurgeExpiredOrdersCommandHandler{orders: orders}
}

// Handle removes every order whose updatedAt is before now minus the
// retention window and returns the number of orders purged.
func (h PurgeExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-cmd.Retention())

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, o := range orders {
		if o.UpdatedAt().Before(cutoff) {
			if _, err = h.orders.Remove(ctx, o.ID()); err != nil {
				return purged, err
			}
			purged++
		}
	}

	return purged, nil
}
