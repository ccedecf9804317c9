// Package pricelist contains the price-list item entity managed by the shop
// admin and consumed read-only during order submission: a submitted cart line
// whose item id matches a listed item is re-priced from the list, so a
// tampered client cannot under-pay for known items.
package pricelist

import (
	"errors"
	"fmt"
	"strings"

	"kirana/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created via the
// NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a price-list entry: an orderable product with its current price and
// display category.
type Item struct {
	id       int64
	name     string
	price    decimal.Decimal
	category string

	isConstructed bool
}

// NewItem creates a price-list item. The id must be positive, the name
// non-blank and the price non-negative. The category is free-form and may be
// empty.
func NewItem(id int64, name string, price decimal.Decimal, category string) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.category = strings.TrimSpace(category)
	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned item identifier.
func (i *Item) ID() int64 {
	return i.id
}

// Name returns the product name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current unit price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Category returns the display category, possibly empty.
func (i *Item) Category() string {
	return i.category
}

// Reprice returns a copy of the item with a new name, price and category,
// keeping its identity. Used by the price-list update operation, which
// replaces all mutable fields at once.
func (i *Item) Reprice(name string, price decimal.Decimal, category string) (*Item, error) {
	return NewItem(i.id, name, price, category)
}

func (i *Item) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item id",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"item price",
			fmt.Errorf("%s is negative", price),
		)
	}
	i.price = price
	return nil
}
