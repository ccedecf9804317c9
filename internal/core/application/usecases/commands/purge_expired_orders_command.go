package commands

import (
	"errors"
	"fmt"
	"time"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// ErrPurgeExpiredOrdersCommandIsNotConstructed is returned when a
// PurgeExpiredOrdersCommand was not created via its constructor.
var ErrPurgeExpiredOrdersCommandIsNotConstructed = errors.New(
	"PurgeExpiredOrdersCommand must be created via NewPurgeExpiredOrdersCommand constructor",
)

// PurgeExpiredOrdersCommand represents a retention sweep: orders whose last
// update is older than the retention window are removed from the store.
type PurgeExpiredOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeExpiredOrdersCommand creates a purge command for a positive
// retention window.
func NewPurgeExpiredOrdersCommand(retention time.Duration) (PurgeExpiredOrdersCommand, error) {
	cmd := PurgeExpiredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PurgeExpiredOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredOrdersCommandIsNotConstructed)
}

// Retention returns the retention window.
func (c PurgeExpiredOrdersCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeExpiredOrdersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"retention",
			fmt.Errorf("%s is not a positive duration", retention),
		)
	}

	c.retention = retention
	return nil
}
