package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCompletePickupCommandIsNotConstructed = errors.New(
	"CompletePickupCommand must be created via NewCompletePickupCommand constructor",
)

// CompletePickupCommand represents the assigned driver handing the laundry
// over at the outlet, with a proof image.
type CompletePickupCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	pickupOrderID kernel.UUID
	proofURL      string

	guard guard.ConstructorGuard
}

// NewCompletePickupCommand creates a command to finish a pickup leg.
func NewCompletePickupCommand(driverID, pickupOrderID kernel.UUID, proofURL string) (CompletePickupCommand, error) {
	cmd := CompletePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setPickupOrderID(pickupOrderID),
		cmd.setProofURL(proofURL),
	); err != nil {
		return CompletePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickupCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickupCommandIsNotConstructed)
}

// DriverID returns the completing driver.
func (c CompletePickupCommand) DriverID() kernel.UUID { return c.driverID }

// PickupOrderID returns the pickup leg being completed.
func (c CompletePickupCommand) PickupOrderID() kernel.UUID { return c.pickupOrderID }

// ProofURL returns the pickup proof image URL.
func (c CompletePickupCommand) ProofURL() string { return c.proofURL }

func (c *CompletePickupCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *CompletePickupCommand) setPickupOrderID(pickupOrderID kernel.UUID) error {
	if err := pickupOrderID.Validate(); err != nil {
		return err
	}
	c.pickupOrderID = pickupOrderID
	return nil
}

func (c *CompletePickupCommand) setProofURL(proofURL string) error {
	if proofURL == "" {
		return errs.NewValueIsRequiredError("proofURL")
	}
	c.proofURL = proofURL
	return nil
}
