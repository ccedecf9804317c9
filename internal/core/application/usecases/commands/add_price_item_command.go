package commands

import (
	"errors"
	"fmt"
	"strings"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrAddPriceItemCommandIsNotConstructed is returned when an
// AddPriceItemCommand was not created via its constructor.
var ErrAddPriceItemCommandIsNotConstructed = errors.New(
	"AddPriceItemCommand must be created via NewAddPriceItemCommand constructor",
)

// AddPriceItemCommand represents an admin request to add a product to the
// price list.
type AddPriceItemCommand struct { //nolint:recvcheck //using for validation
	name     string
	price    decimal.Decimal
	category string

	guard guard.ConstructorGuard
}

// NewAddPriceItemCommand creates an add command. The name must be non-blank
// and the price non-negative.
func NewAddPriceItemCommand(name string, price decimal.Decimal, category string) (AddPriceItemCommand, error) {
	cmd := AddPriceItemCommand{
		category: strings.TrimSpace(category),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return AddPriceItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPriceItemCommand) Validate() error {
	return c.guard.Validate(ErrAddPriceItemCommandIsNotConstructed)
}

// Name returns the product name.
func (c AddPriceItemCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c AddPriceItemCommand) Price() decimal.Decimal {
	return c.price
}

// Category returns the display category, possibly empty.
func (c AddPriceItemCommand) Category() string {
	return c.category
}

func (c *AddPriceItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	c.name = name
	return nil
}

func (c *AddPriceItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"item price",
			fmt.Errorf("%s is negative", price),
		)
	}

	c.price = price
	return nil
}
