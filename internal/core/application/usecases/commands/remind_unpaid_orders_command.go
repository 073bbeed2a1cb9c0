package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrRemindUnpaidOrdersCommandIsNotConstructed = errors.New(
	"RemindUnpaidOrdersCommand must be created via NewRemindUnpaidOrdersCommand constructor",
)

// RemindUnpaidOrdersCommand triggers the payment reminder sweep. Idempotent;
// mutates nothing, only notifies.
type RemindUnpaidOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRemindUnpaidOrdersCommand creates the sweep trigger.
func NewRemindUnpaidOrdersCommand() RemindUnpaidOrdersCommand {
	return RemindUnpaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RemindUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemindUnpaidOrdersCommandIsNotConstructed)
}
