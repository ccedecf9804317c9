package commands

import (
	"errors"
	"fmt"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// ErrRemovePriceItemCommandIsNotConstructed is returned when a
// RemovePriceItemCommand was not created via its constructor.
var ErrRemovePriceItemCommandIsNotConstructed = errors.New(
	"RemovePriceItemCommand must be created via NewRemovePriceItemCommand constructor",
)

// RemovePriceItemCommand represents an admin request to delete a price-list
// item.
type RemovePriceItemCommand struct { //nolint:recvcheck //using for validation
	itemID int64

	guard guard.ConstructorGuard
}

// NewRemovePriceItemCommand creates a removal command for a positive item id.
func NewRemovePriceItemCommand(itemID int64) (RemovePriceItemCommand, error) {
	cmd := RemovePriceItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return RemovePriceItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePriceItemCommand) Validate() error {
	return c.guard.Validate(ErrRemovePriceItemCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c RemovePriceItemCommand) ItemID() int64 {
	return c.itemID
}

func (c *RemovePriceItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item id",
			fmt.Errorf("%d is not a positive identifier", itemID),
		)
	}

	c.itemID = itemID
	return nil
}
