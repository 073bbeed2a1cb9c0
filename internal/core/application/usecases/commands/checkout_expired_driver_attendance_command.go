package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrCheckoutExpiredDriverAttendanceCommandIsNotConstructed = errors.New(
	"CheckoutExpiredDriverAttendanceCommand must be created via NewCheckoutExpiredDriverAttendanceCommand constructor",
)

// CheckoutExpiredDriverAttendanceCommand triggers the sweep that closes
// attendance records left open past their day. Idempotent.
type CheckoutExpiredDriverAttendanceCommand struct {
	guard guard.ConstructorGuard
}

// NewCheckoutExpiredDriverAttendanceCommand creates the sweep trigger.
func NewCheckoutExpiredDriverAttendanceCommand() CheckoutExpiredDriverAttendanceCommand {
	return CheckoutExpiredDriverAttendanceCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CheckoutExpiredDriverAttendanceCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutExpiredDriverAttendanceCommandIsNotConstructed)
}
