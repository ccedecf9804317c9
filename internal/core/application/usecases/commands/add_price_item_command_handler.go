package commands

import (
	"context"

	"kirana/internal/core/domain/model/pricelist"
	"kirana/internal/core/ports"
)

// AddPriceItemCommandHandler adds products to the price list.
type AddPriceItemCommandHandler struct {
	priceList ports.PriceListRepository
}

// NewAddPriceItemCommandHandler creates a handler for price-list additions.
func NewAddPriceItemCommandHandler(priceList ports.PriceListRepository) AddPriceItemCommandHandler {
	return AddPriceItemCommandHandler{priceList: priceList}
}

// Handle assigns the next item id and appends the item, returning it.
func (h AddPriceItemCommandHandler) Handle(ctx context.Context, cmd AddPriceItemCommand) (*pricelist.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id, err := h.priceList.NextID(ctx)
	if err != nil {
		return nil, err
	}

	item, err := pricelist.NewItem(id, cmd.Name(), cmd.Price(), cmd.Category())
	if err != nil {
		return nil, err
	}

	if err = h.priceList.Add(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
