package queries

import (
	"context"

	"kirana/internal/core/domain/model/pricelist"
	"kirana/internal/core/ports"
)

// GetPriceListQueryHandler retrieves all price-list items.
type GetPriceListQueryHandler struct {
	priceList ports.PriceListRepository
}

// NewGetPriceListQueryHandler creates a handler for the price-list query.
func NewGetPriceListQueryHandler(priceList ports.PriceListRepository) GetPriceListQueryHandler {
	return GetPriceListQueryHandler{priceList: priceList}
}

// Handle returns all price-list items sorted by ascending id.
func (h GetPriceListQueryHandler) Handle(ctx context.Context, query GetPriceListQuery) ([]*pricelist.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.priceList.GetAll(ctx)
}
