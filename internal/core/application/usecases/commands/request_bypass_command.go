package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrRequestBypassCommandIsNotConstructed = errors.New(
	"RequestBypassCommand must be created via NewRequestBypassCommand constructor",
)

// RequestBypassCommand represents a worker escalating an item-count mismatch
// to the outlet's admins for adjudication.
type RequestBypassCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	orderID  kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRequestBypassCommand creates a command to escalate a mismatch.
func NewRequestBypassCommand(workerID, orderID kernel.UUID, reason string) (RequestBypassCommand, error) {
	cmd := RequestBypassCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return RequestBypassCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestBypassCommand) Validate() error {
	return c.guard.Validate(ErrRequestBypassCommandIsNotConstructed)
}

// WorkerID returns the escalating worker.
func (c RequestBypassCommand) WorkerID() kernel.UUID { return c.workerID }

// OrderID returns the order whose count mismatched.
func (c RequestBypassCommand) OrderID() kernel.UUID { return c.orderID }

// Reason returns the worker's description of the mismatch.
func (c RequestBypassCommand) Reason() string { return c.reason }

func (c *RequestBypassCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	c.workerID = workerID
	return nil
}

func (c *RequestBypassCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestBypassCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
