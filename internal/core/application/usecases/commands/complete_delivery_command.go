package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the assigned driver handing the order
// to the customer.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	deliveryOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to finish a delivery leg.
func NewCompleteDeliveryCommand(driverID, deliveryOrderID kernel.UUID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setDeliveryOrderID(deliveryOrderID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DriverID returns the completing driver.
func (c CompleteDeliveryCommand) DriverID() kernel.UUID { return c.driverID }

// DeliveryOrderID returns the delivery leg being completed.
func (c CompleteDeliveryCommand) DeliveryOrderID() kernel.UUID { return c.deliveryOrderID }

func (c *CompleteDeliveryCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *CompleteDeliveryCommand) setDeliveryOrderID(deliveryOrderID kernel.UUID) error {
	if err := deliveryOrderID.Validate(); err != nil {
		return err
	}
	c.deliveryOrderID = deliveryOrderID
	return nil
}
