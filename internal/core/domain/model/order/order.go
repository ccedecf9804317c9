package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/pricing"
	"kirana/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a submitted customer order.
//
// Order maintains these invariants:
//   - id is a positive integer assigned by the store, never reused
//   - the cart has at least one line, kept in selection order
//   - subtotal equals the sum of line totals
//   - total equals subtotal plus the delivery fee, always
//   - status is a valid Status value, Pending on creation
//
// Mutation is limited to ChangeStatus; there are no partial field updates.
type Order struct {
	id       int64
	customer Customer
	items    []Line
	notes    string

	subtotal decimal.Decimal
	quote    pricing.DeliveryQuote
	total    decimal.Decimal

	status   Status
	location *kernel.GeoPoint

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an Order from validated inputs. The subtotal is computed
// here by summing line totals and the total is subtotal plus the quote's fee,
// so the pricing invariant holds by construction; callers cannot supply
// totals. The quote must have been computed for these lines and this location
// by the pricing policy.
//
// The location is nil when the customer did not capture one. The order starts
// in Pending status with createdAt and updatedAt both set to now.
func NewOrder(
	id int64,
	customer Customer,
	items []Line,
	notes string,
	quote pricing.DeliveryQuote,
	location *kernel.GeoPoint,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		o.location = &loc
	}

	o.notes = notes
	o.subtotal = sumLineTotals(o.items)
	o.quote = quote
	o.total = o.subtotal.Add(quote.Fee)
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating the
// struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// Clone returns a deep copy of the order. Stores hand out clones so state
// mutated by one caller never aliases state read concurrently by another.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = slices.Clone(o.items)
	if o.location != nil {
		loc := *o.location
		clone.location = &loc
	}
	return &clone
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's store-assigned identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Customer returns the customer details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns the cart lines in selection order. The returned slice is a
// copy; mutating it does not affect the order.
func (o *Order) Items() []Line {
	return slices.Clone(o.items)
}

// Notes returns the free-form note attached at submission, if any.
func (o *Order) Notes() string {
	return o.notes
}

// Subtotal returns the sum of line totals.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// Quote returns the delivery quote computed at submission time.
func (o *Order) Quote() pricing.DeliveryQuote {
	return o.quote
}

// Total returns subtotal plus delivery fee.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Location returns the captured customer location, nil when none was captured.
func (o *Order) Location() *kernel.GeoPoint {
	return o.location
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change, or the
// submission timestamp if the status never changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus sets the order status and stamps updatedAt. Any valid status
// is accepted from any current status; only enum membership is checked.
func (o *Order) ChangeStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Line) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, line := range items {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.items = slices.Clone(items)
	return nil
}

func sumLineTotals(items []Line) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range items {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}
