package order

import (
	"errors"
	"fmt"
	"strings"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line was not created via the
// NewLine constructor.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one cart line of an order: a price-list item with the quantity the
// customer selected. Lines keep their selection order within the order. The
// line total is always derived from unit price and quantity, never stored.
type Line struct { //nolint:recvcheck //using for validation
	itemID    int64
	name      string
	unitPrice decimal.Decimal
	quantity  int

	guard guard.ConstructorGuard
}

// NewLine creates a cart line. The item id must be positive, the name
// non-blank, the unit price non-negative and the quantity positive.
func NewLine(itemID int64, name string, unitPrice decimal.Decimal, quantity int) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setItemID(itemID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ItemID returns the price-list item identifier.
func (l Line) ItemID() int64 {
	return l.itemID
}

// Name returns the item name as it appears on the order.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the price per unit.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns unitPrice * quantity.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *Line) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item id",
			fmt.Errorf("%d is not a positive identifier", itemID),
		)
	}

	l.itemID = itemID
	return nil
}

func (l *Line) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	l.name = name
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}

	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	l.quantity = quantity
	return nil
}
