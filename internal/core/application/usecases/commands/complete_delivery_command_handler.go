package commands

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
)

// CompleteDeliveryCommandHandler finishes the delivery leg: COMPLETED on
// both rows, deliveryTime stamped, customer notified.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
	notifier   Notifier
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock kernel.Clock, notifier Notifier) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle processes the delivery completion. Only the assigned driver may
// complete the leg.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryOrderRepository()
	deliveryOrder, err := deliveryRepo.Get(ctx, cmd.DeliveryOrderID())
	if err != nil {
		return err
	}

	if err = deliveryOrder.Complete(cmd.DriverID(), now); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, deliveryOrder); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, deliveryOrder.OrderID())
	if err != nil {
		return err
	}

	if err = parent.CompleteDelivery(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parent); err != nil {
		return err
	}

	note, err := notification.NewNotification(
		kernel.NewUUID(),
		"Order delivered",
		fmt.Sprintf("Order %s was delivered", parent.OrderNumber()),
		notification.CustomerAudience{CustomerID: parent.CustomerID()},
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
