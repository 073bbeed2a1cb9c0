package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrRequestPickupCommandIsNotConstructed = errors.New(
		"RequestPickupCommand must be created via NewRequestPickupCommand constructor",
	)
	ErrPickupTimeIsRequired = errors.New("pickup time is required")
)

// RequestPickupCommand represents a customer's request to have laundry picked
// up. It creates the order and its pickup leg and wakes up the outlet's
// drivers.
type RequestPickupCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	outletID   kernel.UUID
	addressID  kernel.UUID
	pickupTime time.Time

	guard guard.ConstructorGuard
}

// NewRequestPickupCommand creates a command to register a new pickup request.
func NewRequestPickupCommand(orderID, customerID, outletID, addressID kernel.UUID, pickupTime time.Time) (RequestPickupCommand, error) {
	cmd := RequestPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setOutletID(outletID),
		cmd.setAddressID(addressID),
		cmd.setPickupTime(pickupTime),
	); err != nil {
		return RequestPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPickupCommand) Validate() error {
	return c.guard.Validate(ErrRequestPickupCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c RequestPickupCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the requesting customer.
func (c RequestPickupCommand) CustomerID() kernel.UUID { return c.customerID }

// OutletID returns the outlet that will process the order.
func (c RequestPickupCommand) OutletID() kernel.UUID { return c.outletID }

// AddressID returns the pickup address.
func (c RequestPickupCommand) AddressID() kernel.UUID { return c.addressID }

// PickupTime returns the requested pickup time.
func (c RequestPickupCommand) PickupTime() time.Time { return c.pickupTime }

func (c *RequestPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestPickupCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RequestPickupCommand) setOutletID(outletID kernel.UUID) error {
	if err := outletID.Validate(); err != nil {
		return err
	}
	c.outletID = outletID
	return nil
}

func (c *RequestPickupCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	c.addressID = addressID
	return nil
}

func (c *RequestPickupCommand) setPickupTime(pickupTime time.Time) error {
	if pickupTime.IsZero() {
		return ErrPickupTimeIsRequired
	}
	c.pickupTime = pickupTime
	return nil
}
