package ports

import (
	"context"

	"kirana/internal/core/domain/model/pricelist"
)

// PriceListRepository is the persistence port for price-list items.
type PriceListRepository interface {
	// NextID reserves the next item identifier.
	NextID(ctx context.Context) (int64, error)

	// Add appends a new item.
	Add(ctx context.Context, item *pricelist.Item) error

	// Get returns the item with the given id, or an ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*pricelist.Item, error)

	// GetAll returns all items in ascending id order.
	GetAll(ctx context.Context) ([]*pricelist.Item, error)

	// Update replaces the stored item. Returns an ObjectNotFoundError when
	// the id is unknown.
	Update(ctx context.Context, item *pricelist.Item) error

	// Remove deletes the item with the given id, or returns an
	// ObjectNotFoundError.
	Remove(ctx context.Context, id int64) error
}
