package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrProcessStationCommandIsNotConstructed = errors.New(
	"ProcessStationCommand must be created via NewProcessStationCommand constructor",
)

// ProcessStationCommand represents a worker starting to process an order at
// its current station, counting the submitted items against the manifest.
type ProcessStationCommand struct { //nolint:recvcheck //using for validation
	workerID       kernel.UUID
	orderID        kernel.UUID
	submittedItems []order.Item

	guard guard.ConstructorGuard
}

// NewProcessStationCommand creates a command to start station work.
// Submitted items map laundry item ids to the piece counts the worker found.
func NewProcessStationCommand(workerID, orderID kernel.UUID, submittedItems map[kernel.UUID]int) (ProcessStationCommand, error) {
	cmd := ProcessStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	items, err := order.NewItems(submittedItems)
	if err != nil {
		return ProcessStationCommand{}, err
	}
	cmd.submittedItems = items

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setOrderID(orderID),
	); err != nil {
		return ProcessStationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessStationCommand) Validate() error {
	return c.guard.Validate(ErrProcessStationCommandIsNotConstructed)
}

// WorkerID returns the acting worker.
func (c ProcessStationCommand) WorkerID() kernel.UUID { return c.workerID }

// OrderID returns the order being processed.
func (c ProcessStationCommand) OrderID() kernel.UUID { return c.orderID }

// SubmittedItems returns the worker's item count.
func (c ProcessStationCommand) SubmittedItems() []order.Item { return c.submittedItems }

func (c *ProcessStationCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	c.workerID = workerID
	return nil
}

func (c *ProcessStationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
