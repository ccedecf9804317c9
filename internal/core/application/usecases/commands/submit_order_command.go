package commands

import (
	"errors"
	"slices"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrSubmitOrderCommandIsNotConstructed is returned when a SubmitOrderCommand
// was not created via its constructor.
var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// OrderLineInput is one cart line as submitted by the client. The unit price
// is a display hint only: when the item id matches a price-list entry, the
// listed price overrides it during handling.
type OrderLineInput struct {
	ItemID    int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// SubmitOrderCommand represents a customer's order submission: contact
// details, the selected cart lines in selection order, an optional captured
// location and an optional note.
//
// Example:
//
//	cmd, err := commands.NewSubmitOrderCommand(
//	    "Ravi Kumar", "9876504321", "12 Bazaar Street", "ring the bell",
//	    lines, &location,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	customerName    string
	customerPhone   string
	deliveryAddress string
	notes           string
	lines           []OrderLineInput
	location        *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a submission command. The cart must contain at
// least one line; customer fields and line contents are validated by the
// domain constructors during handling. Pass a nil location when the customer
// did not capture one.
func NewSubmitOrderCommand(
	customerName string,
	customerPhone string,
	deliveryAddress string,
	notes string,
	lines []OrderLineInput,
	location *kernel.GeoPoint,
) (SubmitOrderCommand, error) {
	if len(lines) == 0 {
		return SubmitOrderCommand{}, errs.NewValueIsRequiredError("order items")
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return SubmitOrderCommand{}, err
		}
	}

	return SubmitOrderCommand{
		customerName:    customerName,
		customerPhone:   customerPhone,
		deliveryAddress: deliveryAddress,
		notes:           notes,
		lines:           slices.Clone(lines),
		location:        location,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// CustomerName returns the submitted customer name.
func (c SubmitOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the submitted phone number.
func (c SubmitOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// DeliveryAddress returns the submitted delivery address, possibly empty.
func (c SubmitOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Notes returns the free-form order note, possibly empty.
func (c SubmitOrderCommand) Notes() string {
	return c.notes
}

// Lines returns the submitted cart lines in selection order.
func (c SubmitOrderCommand) Lines() []OrderLineInput {
	return slices.Clone(c.lines)
}

// Location returns the captured customer location, nil when not captured.
func (c SubmitOrderCommand) Location() *kernel.GeoPoint {
	return c.location
}
