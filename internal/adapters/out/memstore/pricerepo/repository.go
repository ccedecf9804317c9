// Package pricerepo implements the PriceListRepository port over an in-memory
// collection, mutex-serialized like its order counterpart.
package pricerepo

import (
	"context"
	"sort"
	"sync"

	"kirana/internal/core/domain/model/pricelist"
	"kirana/internal/pkg/errs"
)

// Repository is an in-memory price-list store with a monotonically increasing
// id sequence.
type Repository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*pricelist.Item
}

// NewRepository creates an empty price-list repository.
func NewRepository() *Repository {
	return &Repository{
		items: make(map[int64]*pricelist.Item),
	}
}

// NextID reserves and returns the next item identifier.
func (r *Repository) NextID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	return r.nextID, nil
}

// Add appends a new item.
func (r *Repository) Add(_ context.Context, item *pricelist.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID()]; exists {
		return errs.NewValueIsInvalidError("item id already present")
	}

	r.items[item.ID()] = item
	return nil
}

// Get returns the item with the given id.
func (r *Repository) Get(_ context.Context, id int64) (*pricelist.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("item", id)
	}

	return item, nil
}

// GetAll returns all items sorted by ascending id.
func (r *Repository) GetAll(_ context.Context) ([]*pricelist.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*pricelist.Item, 0, len(r.items))
	for _, item := range r.items {
		all = append(all, item)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID() < all[j].ID()
	})

	return all, nil
}

// Update replaces the stored item.
func (r *Repository) Update(_ context.Context, item *pricelist.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID()]; !ok {
		return errs.NewObjectNotFoundError("item", item.ID())
	}

	r.items[item.ID()] = item
	return nil
}

// Remove deletes the item with the given id.
func (r *Repository) Remove(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return errs.NewObjectNotFoundError("item", id)
	}

	delete(r.items, id)
	return nil
}
