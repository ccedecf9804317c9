// Package ports defines the interfaces between the application core and its
// adapters: repositories over the in-memory stores and the notification queue
// hand-off.
package ports

import (
	"context"

	"kirana/internal/core/domain/model/order"
)

// OrderRepository is the persistence port for the Order aggregate. The backing
// store is an in-memory process-lifetime collection; implementations must
// serialize access so concurrent HTTP handlers cannot corrupt it, and must
// return snapshots from reads: mutating a returned order affects the store
// only through Update.
type OrderRepository interface {
	// NextID reserves the next order identifier. Identifiers are strictly
	// increasing and never reused, even after removals.
	NextID(ctx context.Context) (int64, error)

	// Add appends a new order. The order's id must have been reserved via
	// NextID.
	Add(ctx context.Context, o *order.Order) error

	// Get returns the order with the given id, or an ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll returns all orders in creation order (ascending id).
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Update replaces the stored order with the given aggregate state.
	// Returns an ObjectNotFoundError when the id is unknown.
	Update(ctx context.Context, o *order.Order) error

	// Remove deletes and returns the order with the given id, or an
	// ObjectNotFoundError. The id is never reassigned.
	Remove(ctx context.Context, id int64) (*order.Order, error)
}
