package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCheckInCommandIsNotConstructed = errors.New(
	"CheckInCommand must be created via NewCheckInCommand constructor",
)

// CheckInCommand represents a driver or worker clocking in for the day.
type CheckInCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckInCommand creates a command to clock a user in.
func NewCheckInCommand(userID kernel.UUID) (CheckInCommand, error) {
	cmd := CheckInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return CheckInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckInCommand) Validate() error {
	return c.guard.Validate(ErrCheckInCommandIsNotConstructed)
}

// UserID returns the clocking-in user.
func (c CheckInCommand) UserID() kernel.UUID { return c.userID }

func (c *CheckInCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
