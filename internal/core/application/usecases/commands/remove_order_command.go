package commands

import (
	"errors"
	"fmt"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// ErrRemoveOrderCommandIsNotConstructed is returned when a RemoveOrderCommand
// was not created via its constructor.
var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents an admin request to delete an order.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a removal command for a positive order id.
func NewRemoveOrderCommand(orderID int64) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c RemoveOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *RemoveOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%d is not a positive identifier", orderID),
		)
	}

	c.orderID = orderID
	return nil
}
