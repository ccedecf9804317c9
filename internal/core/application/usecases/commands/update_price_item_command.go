package commands

import (
	"errors"
	"fmt"
	"strings"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrUpdatePriceItemCommandIsNotConstructed is returned when an
// UpdatePriceItemCommand was not created via its constructor.
var ErrUpdatePriceItemCommandIsNotConstructed = errors.New(
	"UpdatePriceItemCommand must be created via NewUpdatePriceItemCommand constructor",
)

// UpdatePriceItemCommand represents an admin request to replace a price-list
// item's name, price and category. There are no partial updates.
type UpdatePriceItemCommand struct { //nolint:recvcheck //using for validation
	itemID   int64
	name     string
	price    decimal.Decimal
	category string

	guard guard.ConstructorGuard
}

// NewUpdatePriceItemCommand creates an update command. The item id must be
// positive, the name non-blank and the price non-negative.
func NewUpdatePriceItemCommand(
	itemID int64,
	name string,
	price decimal.Decimal,
	category string,
) (UpdatePriceItemCommand, error) {
	cmd := UpdatePriceItemCommand{
		category: strings.TrimSpace(category),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdatePriceItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePriceItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePriceItemCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c UpdatePriceItemCommand) ItemID() int64 {
	return c.itemID
}

// Name returns the replacement product name.
func (c UpdatePriceItemCommand) Name() string {
	return c.name
}

// Price returns the replacement unit price.
func (c UpdatePriceItemCommand) Price() decimal.Decimal {
	return c.price
}

// Category returns the replacement category, possibly empty.
func (c UpdatePriceItemCommand) Category() string {
	return c.category
}

func (c *UpdatePriceItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item id",
			fmt.Errorf("%d is not a positive identifier", itemID),
		)
	}

	c.itemID = itemID
	return nil
}

func (c *UpdatePriceItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	c.name = name
	return nil
}

func (c *UpdatePriceItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"item price",
			fmt.Errorf("%s is negative", price),
		)
	}

	c.price = price
	return nil
}
