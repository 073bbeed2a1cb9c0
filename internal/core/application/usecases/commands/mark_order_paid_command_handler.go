package commands

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
)

// MarkOrderPaidCommandHandler consumes the payment webhook: a successful
// payment unparks WAITING_FOR_PAYMENT into READY_FOR_DELIVERY, creates the
// delivery leg, frees the packing worker's shift and wakes the drivers up.
type MarkOrderPaidCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      kernel.Clock
	notifier   Notifier
}

// NewMarkOrderPaidCommandHandler creates a handler for payment settlement.
func NewMarkOrderPaidCommandHandler(uowFactory PaymentUoWFactory, clock kernel.Clock, notifier Notifier) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle processes the settlement signal. PENDING and FAILED reports are
// no-ops: the unpaid sweep owns the failure path.
func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Status().IsPaid() {
		return nil
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = parent.MarkPaid(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parent); err != nil {
		return err
	}

	// The packing worker's shift was deliberately left open while the order
	// waited for payment; settlement is what frees it.
	if err = closePackingShift(ctx, uow.WorkProcessRepository(), uow.WorkerShiftRepository(), parent.ID(), now); err != nil {
		return err
	}

	deliveryID := kernel.NewUUID()
	deliveryOrder, err := delivery.NewDeliveryOrder(deliveryID, parent.ID(), delivery.Number(now, deliveryID))
	if err != nil {
		return err
	}
	if err = uow.DeliveryOrderRepository().Add(ctx, deliveryOrder); err != nil {
		return err
	}

	note, err := notification.NewNotification(
		kernel.NewUUID(),
		"New delivery available",
		fmt.Sprintf("Order %s is paid and ready for delivery", parent.OrderNumber()),
		notification.DriversAudience{OutletID: parent.OutletID()},
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
