package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a driver claiming an unassigned delivery leg.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	deliveryOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a driver to claim a delivery.
func NewAcceptDeliveryCommand(driverID, deliveryOrderID kernel.UUID) (AcceptDeliveryCommand, error) {
	cmd := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setDeliveryOrderID(deliveryOrderID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// DriverID returns the claiming driver.
func (c AcceptDeliveryCommand) DriverID() kernel.UUID { return c.driverID }

// DeliveryOrderID returns the delivery leg being claimed.
func (c AcceptDeliveryCommand) DeliveryOrderID() kernel.UUID { return c.deliveryOrderID }

func (c *AcceptDeliveryCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AcceptDeliveryCommand) setDeliveryOrderID(deliveryOrderID kernel.UUID) error {
	if err := deliveryOrderID.Validate(); err != nil {
		return err
	}
	c.deliveryOrderID = deliveryOrderID
	return nil
}
