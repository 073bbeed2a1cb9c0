package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCheckOutCommandIsNotConstructed = errors.New(
	"CheckOutCommand must be created via NewCheckOutCommand constructor",
)

// CheckOutCommand represents a driver or worker clocking out.
type CheckOutCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckOutCommand creates a command to clock a user out.
func NewCheckOutCommand(userID kernel.UUID) (CheckOutCommand, error) {
	cmd := CheckOutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return CheckOutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckOutCommand) Validate() error {
	return c.guard.Validate(ErrCheckOutCommandIsNotConstructed)
}

// UserID returns the clocking-out user.
func (c CheckOutCommand) UserID() kernel.UUID { return c.userID }

func (c *CheckOutCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
