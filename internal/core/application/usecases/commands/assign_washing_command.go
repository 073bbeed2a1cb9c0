package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrAssignWashingCommandIsNotConstructed = errors.New(
	"AssignWashingCommand must be created via NewAssignWashingCommand constructor",
)

// AssignWashingCommand represents an outlet admin pricing an arrived order
// and sending it into the station pipeline: the item manifest, total price
// and weight recorded here are what every station's workers count against.
type AssignWashingCommand struct { //nolint:recvcheck //using for validation
	adminID     kernel.UUID
	orderID     kernel.UUID
	totalPrice  int64
	totalWeight float64
	items       []order.Item

	guard guard.ConstructorGuard
}

// NewAssignWashingCommand creates a command to price an order and assign it
// to washing. Items map laundry item ids to piece counts.
func NewAssignWashingCommand(adminID, orderID kernel.UUID, totalPrice int64, totalWeight float64, items map[kernel.UUID]int) (AssignWashingCommand, error) {
	cmd := AssignWashingCommand{
		guard: guard.NewConstructorGuard(),
	}

	manifest, err := order.NewItems(items)
	if err != nil {
		return AssignWashingCommand{}, err
	}
	cmd.items = manifest

	if err := errors.Join(
		cmd.setAdminID(adminID),
		cmd.setOrderID(orderID),
		cmd.setTotalPrice(totalPrice),
		cmd.setTotalWeight(totalWeight),
	); err != nil {
		return AssignWashingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWashingCommand) Validate() error {
	return c.guard.Validate(ErrAssignWashingCommandIsNotConstructed)
}

// AdminID returns the acting outlet admin.
func (c AssignWashingCommand) AdminID() kernel.UUID { return c.adminID }

// OrderID returns the order being assigned.
func (c AssignWashingCommand) OrderID() kernel.UUID { return c.orderID }

// TotalPrice returns the assigned price in minor currency units.
func (c AssignWashingCommand) TotalPrice() int64 { return c.totalPrice }

// TotalWeight returns the assigned weight in kilograms.
func (c AssignWashingCommand) TotalWeight() float64 { return c.totalWeight }

// Items returns the item manifest.
func (c AssignWashingCommand) Items() []order.Item { return c.items }

func (c *AssignWashingCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	c.adminID = adminID
	return nil
}

func (c *AssignWashingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignWashingCommand) setTotalPrice(totalPrice int64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}
	c.totalPrice = totalPrice
	return nil
}

func (c *AssignWashingCommand) setTotalWeight(totalWeight float64) error {
	if totalWeight <= 0 {
		return errs.NewValueIsInvalidError("totalWeight")
	}
	c.totalWeight = totalWeight
	return nil
}
