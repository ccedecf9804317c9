package commands

import (
	"context"

	"kirana/internal/core/ports"
)

// RemovePriceItemCommandHandler deletes price-list items.
type RemovePriceItemCommandHandler struct {
	priceList ports.PriceListRepository
}

// NewRemovePriceItemCommandHandler creates a handler for price-list removals.
func NewRemovePriceItemCommandHandler(priceList ports.PriceListRepository) RemovePriceItemCommandHandler {
	return RemovePriceItemCommandHandler{priceList: priceList}
}

// Handle deletes the item, or returns an ObjectNotFoundError when the id is
// unknown.
func (h RemovePriceItemCommandHandler) Handle(ctx context.Context, cmd RemovePriceItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.priceList.Remove(ctx, cmd.ItemID())
}
