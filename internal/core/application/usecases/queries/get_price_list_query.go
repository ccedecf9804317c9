package queries

import (
	"errors"

	"kirana/internal/pkg/guard"
)

// ErrGetPriceListQueryIsNotConstructed is returned when a GetPriceListQuery
// was not created via its constructor.
var ErrGetPriceListQueryIsNotConstructed = errors.New(
	"GetPriceListQuery must be created via NewGetPriceListQuery constructor",
)

// GetPriceListQuery retrieves the full price list for the order page and the
// admin panel.
type GetPriceListQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPriceListQuery creates a parameterless query for the price list.
func NewGetPriceListQuery() GetPriceListQuery {
	return GetPriceListQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPriceListQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceListQueryIsNotConstructed)
}
