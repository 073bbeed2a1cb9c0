package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
)

// AcceptDeliveryCommandHandler binds a driver to an unassigned delivery leg,
// mirroring the pickup claim: advisory guards first, the repository's
// conditional claim as the authoritative exclusivity decision.
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery claims.
func NewAcceptDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock kernel.Clock) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the delivery claim.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	member, err := requireRole(ctx, uow.StaffRepository(), cmd.DriverID(), staff.RoleDriver, "accept delivery")
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryOrderRepository()
	deliveryOrder, err := deliveryRepo.Get(ctx, cmd.DeliveryOrderID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, deliveryOrder.OrderID())
	if err != nil {
		return err
	}

	if !member.WorksAt(parent.OutletID()) {
		return errs.NewForbiddenError("accept delivery", "delivery belongs to another outlet")
	}

	if err = assertDriverFree(ctx, uow.PickupOrderRepository(), deliveryRepo, cmd.DriverID()); err != nil {
		return err
	}

	if err = deliveryRepo.Claim(ctx, cmd.DeliveryOrderID(), cmd.DriverID()); err != nil {
		return err
	}

	if err = parent.AssignDeliveryDriver(cmd.DriverID()); err != nil {
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
