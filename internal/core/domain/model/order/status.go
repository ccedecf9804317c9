package order

import (
	"fmt"
	"strings"

	"kirana/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Pending is the sole initial state. The transition function is deliberately
// unconstrained: the shop admin may move an order from any state to any other
// valid state, matching how the shop actually operates (phone calls reverse
// cancellations, deliveries get retried). Delivered and Cancelled are
// conventional end states but are not enforced as terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at submission.
	Pending

	// Confirmed indicates the shop has acknowledged the order.
	Confirmed

	// Preparing indicates the order is being packed.
	Preparing

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled indicates the order was called off.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status from its string form, case-insensitively,
// so payloads sending "Pending" and "pending" both resolve. Returns an error
// for unrecognized values.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Confirmed, Preparing, Delivered and Cancelled;
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. It implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
