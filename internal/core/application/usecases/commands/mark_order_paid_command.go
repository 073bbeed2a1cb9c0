package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand carries the payment gateway's one-way settlement
// signal for an order.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  payment.Status

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command from a gateway webhook event.
func NewMarkOrderPaidCommand(orderID kernel.UUID, status payment.Status) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the settled order.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the reported settlement status.
func (c MarkOrderPaidCommand) Status() payment.Status { return c.status }

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkOrderPaidCommand) setStatus(status payment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
