package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrCancelUnpaidOrdersCommandIsNotConstructed = errors.New(
	"CancelUnpaidOrdersCommand must be created via NewCancelUnpaidOrdersCommand constructor",
)

// CancelUnpaidOrdersCommand triggers the sweep that cancels orders whose
// unpaid deadline elapsed. Idempotent.
type CancelUnpaidOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelUnpaidOrdersCommand creates the sweep trigger.
func NewCancelUnpaidOrdersCommand() CancelUnpaidOrdersCommand {
	return CancelUnpaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CancelUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelUnpaidOrdersCommandIsNotConstructed)
}
