package commands

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
)

// CompletePickupCommandHandler finishes a pickup leg: ARRIVED_AT_OUTLET on
// both the leg and the order, then a notification to the outlet's attending
// washing workers.
type CompletePickupCommandHandler struct {
	uowFactory PickupUoWFactory
	clock      kernel.Clock
	notifier   Notifier
}

// NewCompletePickupCommandHandler creates a handler for pickup completion.
func NewCompletePickupCommandHandler(uowFactory PickupUoWFactory, clock kernel.Clock, notifier Notifier) CompletePickupCommandHandler {
	return CompletePickupCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle processes the pickup completion. Only the assigned driver may
// complete the leg; anyone else gets Forbidden from the aggregate.
func (h CompletePickupCommandHandler) Handle(ctx context.Context, cmd CompletePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()

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

	pickupRepo := uow.PickupOrderRepository()
	pickupOrder, err := pickupRepo.Get(ctx, cmd.PickupOrderID())
	if err != nil {
		return err
	}

	if err = pickupOrder.Complete(cmd.DriverID(), now, cmd.ProofURL()); err != nil {
		return err
	}

	if err = pickupRepo.Update(ctx, pickupOrder); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, pickupOrder.OrderID())
	if err != nil {
		return err
	}

	if err = parent.ArriveAtOutlet(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parent); err != nil {
		return err
	}

	note, err := notification.NewNotification(
		kernel.NewUUID(),
		"Laundry arrived",
		fmt.Sprintf("Order %s arrived at the outlet and is ready for washing", parent.OrderNumber()),
		notification.WorkersAudience{OutletID: parent.OutletID(), Station: order.StationWashing},
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Push(ctx, note)
	return nil
}
