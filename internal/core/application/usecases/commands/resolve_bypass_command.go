package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrResolveBypassCommandIsNotConstructed = errors.New(
	"ResolveBypassCommand must be created via NewResolveBypassCommand constructor",
)

// ResolveBypassCommand represents an outlet admin closing an escalated work
// process and letting the pipeline resume.
type ResolveBypassCommand struct { //nolint:recvcheck //using for validation
	adminID       kernel.UUID
	workProcessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveBypassCommand creates a command to resolve a bypass.
func NewResolveBypassCommand(adminID, workProcessID kernel.UUID) (ResolveBypassCommand, error) {
	cmd := ResolveBypassCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAdminID(adminID),
		cmd.setWorkProcessID(workProcessID),
	); err != nil {
		return ResolveBypassCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveBypassCommand) Validate() error {
	return c.guard.Validate(ErrResolveBypassCommandIsNotConstructed)
}

// AdminID returns the resolving admin.
func (c ResolveBypassCommand) AdminID() kernel.UUID { return c.adminID }

// WorkProcessID returns the escalated work process.
func (c ResolveBypassCommand) WorkProcessID() kernel.UUID { return c.workProcessID }

func (c *ResolveBypassCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	c.adminID = adminID
	return nil
}

func (c *ResolveBypassCommand) setWorkProcessID(workProcessID kernel.UUID) error {
	if err := workProcessID.Validate(); err != nil {
		return err
	}
	c.workProcessID = workProcessID
	return nil
}
