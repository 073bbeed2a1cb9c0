package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrCheckoutExpiredWorkerShiftsCommandIsNotConstructed = errors.New(
	"CheckoutExpiredWorkerShiftsCommand must be created via NewCheckoutExpiredWorkerShiftsCommand constructor",
)

// CheckoutExpiredWorkerShiftsCommand triggers the sweep that force-closes
// worker shifts whose half-day window has passed. Idempotent; re-run on
// every scheduler tick.
type CheckoutExpiredWorkerShiftsCommand struct {
	guard guard.ConstructorGuard
}

// NewCheckoutExpiredWorkerShiftsCommand creates the sweep trigger.
func NewCheckoutExpiredWorkerShiftsCommand() CheckoutExpiredWorkerShiftsCommand {
	return CheckoutExpiredWorkerShiftsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CheckoutExpiredWorkerShiftsCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutExpiredWorkerShiftsCommandIsNotConstructed)
}
