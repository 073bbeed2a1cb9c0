package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCompleteStationCommandIsNotConstructed = errors.New(
	"CompleteStationCommand must be created via NewCompleteStationCommand constructor",
)

// CompleteStationCommand represents a worker finishing their station's work
// on an order.
type CompleteStationCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteStationCommand creates a command to finish station work.
func NewCompleteStationCommand(workerID, orderID kernel.UUID) (CompleteStationCommand, error) {
	cmd := CompleteStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CompleteStationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStationCommandIsNotConstructed)
}

// WorkerID returns the acting worker.
func (c CompleteStationCommand) WorkerID() kernel.UUID { return c.workerID }

// OrderID returns the order whose station work is finishing.
func (c CompleteStationCommand) OrderID() kernel.UUID { return c.orderID }

func (c *CompleteStationCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	c.workerID = workerID
	return nil
}

func (c *CompleteStationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
