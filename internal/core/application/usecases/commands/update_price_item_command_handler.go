package commands

import (
	"context"

	"kirana/internal/core/domain/model/pricelist"
	"kirana/internal/core/ports"
)

// UpdatePriceItemCommandHandler replaces price-list item fields.
type UpdatePriceItemCommandHandler struct {
	priceList ports.PriceListRepository
}

// NewUpdatePriceItemCommandHandler creates a handler for price-list updates.
func NewUpdatePriceItemCommandHandler(priceList ports.PriceListRepository) UpdatePriceItemCommandHandler {
	return UpdatePriceItemCommandHandler{priceList: priceList}
}

// Handle replaces the item's mutable fields, keeping its identity, and
// returns the updated item. Returns an ObjectNotFoundError when the item id
// is unknown.
func (h UpdatePriceItemCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePriceItemCommand,
) (*pricelist.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := h.priceList.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	updated, err := item.Reprice(cmd.Name(), cmd.Price(), cmd.Category())
	if err != nil {
		return nil, err
	}

	if err = h.priceList.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}
