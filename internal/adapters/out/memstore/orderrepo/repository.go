// Package orderrepo implements the OrderRepository port over an in-memory
// collection. State lives for the process lifetime only; there is no
// persistence across restarts. All operations are mutex-serialized and the
// store follows copy-in/copy-out semantics: it keeps and hands out clones,
// never a pointer a caller could mutate behind the lock. Mutating a returned
// aggregate touches only the caller's copy until it is written back via
// Update.
package orderrepo

import (
	"context"
	"sort"
	"sync"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"
)

// Repository is an in-memory order store with a monotonically increasing id
// sequence. Ids are never reused, even after removals.
type Repository struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*order.Order
}

// NewRepository creates an empty order repository.
func NewRepository() *Repository {
	return &Repository{
		orders: make(map[int64]*order.Order),
	}
}

// NextID reserves and returns the next order identifier.
func (r *Repository) NextID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	return r.nextID, nil
}

// Add appends a new order. Adding an id that is already present is a
// programming error and is rejected.
func (r *Repository) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.ID()]; exists {
		return errs.NewValueIsInvalidError("order id already present")
	}

	r.orders[o.ID()] = o.Clone()
	return nil
}

// Get returns a clone of the order with the given id.
func (r *Repository) Get(_ context.Context, id int64) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return o.Clone(), nil
}

// GetAll returns clones of all orders sorted by ascending id, i.e. creation
// order.
func (r *Repository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		all = append(all, o.Clone())
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID() < all[j].ID()
	})

	return all, nil
}

// Update replaces the stored order with the given aggregate state.
func (r *Repository) Update(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}

	r.orders[o.ID()] = o.Clone()
	return nil
}

// Remove deletes and returns the order with the given id. The id stays
// consumed: the sequence never hands it out again.
func (r *Repository) Remove(_ context.Context, id int64) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	delete(r.orders, id)
	return o, nil
}
