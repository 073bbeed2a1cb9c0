package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
)

// AcceptPickupCommandHandler binds a driver to an unassigned pickup leg.
//
// The attendance gate, role check and driver-free guard run first as
// advisory pre-checks; the repository's conditional claim is the
// authoritative exclusivity decision. A racing loser sees zero affected
// rows and gets AlreadyAssigned, never a silent no-op.
type AcceptPickupCommandHandler struct {
	uowFactory PickupUoWFactory
	clock      kernel.Clock
}

// NewAcceptPickupCommandHandler creates a handler for pickup claims.
func NewAcceptPickupCommandHandler(uowFactory PickupUoWFactory, clock kernel.Clock) AcceptPickupCommandHandler {
	return AcceptPickupCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the pickup claim, mirroring the new status and driver
// onto the order in the same transaction.
func (h AcceptPickupCommandHandler) Handle(ctx context.Context, cmd AcceptPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := requireAttendance(ctx, uow.AttendanceRepository(), cmd.DriverID(), h.clock); err != nil {
		return err
	}

	member, err := requireRole(ctx, uow.StaffRepository(), cmd.DriverID(), staff.RoleDriver, "accept pickup")
	if err != nil {
		return err
	}

	pickupRepo := uow.PickupOrderRepository()
	pickupOrder, err := pickupRepo.Get(ctx, cmd.PickupOrderID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, pickupOrder.OrderID())
	if err != nil {
		return err
	}

	if !member.WorksAt(parent.OutletID()) {
		return errs.NewForbiddenError("accept pickup", "pickup belongs to another outlet")
	}

	if err = assertDriverFree(ctx, pickupRepo, uow.DeliveryOrderRepository(), cmd.DriverID()); err != nil {
		return err
	}

	if err = pickupRepo.Claim(ctx, cmd.PickupOrderID(), cmd.DriverID()); err != nil {
		return err
	}

	if err = parent.AssignPickupDriver(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
