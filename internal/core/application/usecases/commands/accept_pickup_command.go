package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAcceptPickupCommandIsNotConstructed = errors.New(
	"AcceptPickupCommand must be created via NewAcceptPickupCommand constructor",
)

// AcceptPickupCommand represents a driver claiming an unassigned pickup leg.
type AcceptPickupCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	pickupOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptPickupCommand creates a command for a driver to claim a pickup.
func NewAcceptPickupCommand(driverID, pickupOrderID kernel.UUID) (AcceptPickupCommand, error) {
	cmd := AcceptPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setPickupOrderID(pickupOrderID),
	); err != nil {
		return AcceptPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptPickupCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPickupCommandIsNotConstructed)
}

// DriverID returns the claiming driver.
func (c AcceptPickupCommand) DriverID() kernel.UUID { return c.driverID }

// PickupOrderID returns the pickup leg being claimed.
func (c AcceptPickupCommand) PickupOrderID() kernel.UUID { return c.pickupOrderID }

func (c *AcceptPickupCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AcceptPickupCommand) setPickupOrderID(pickupOrderID kernel.UUID) error {
	if err := pickupOrderID.Validate(); err != nil {
		return err
	}
	c.pickupOrderID = pickupOrderID
	return nil
}
