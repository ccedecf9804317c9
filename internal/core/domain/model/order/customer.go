package order

import (
	"errors"
	"strings"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created via
// the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an immutable value object holding the contact details attached
// to an order. Name and phone are required; the address falls back to
// "Not provided" when blank. Fields are accepted as given, raw or
// pre-sanitized; masking is the notification renderer's concern.
type Customer struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer, trimming whitespace from all fields.
// Returns a validation error when name or phone is empty or whitespace-only.
func NewCustomer(name string, phone string, address string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setAddress(address),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the delivery address, "Not provided" when none was given.
func (c Customer) Address() string {
	return c.address
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}

	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		address = "Not provided"
	}

	c.address = address
	return nil
}
