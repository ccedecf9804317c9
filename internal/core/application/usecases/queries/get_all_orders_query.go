// Package queries contains read-only operations over the stores. Queries are
// constructor-validated like commands but never mutate state.
package queries

import (
	"errors"

	"kirana/internal/pkg/guard"
)

// ErrGetAllOrdersQueryIsNotConstructed is returned when a GetAllOrdersQuery
// was not created via its constructor.
var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in creation order, for the admin
// panel. There is no pagination at the shop's current scale.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
