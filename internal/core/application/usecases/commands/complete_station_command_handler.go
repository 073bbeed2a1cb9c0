package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// CompleteStationCommandHandler finishes one station visit: advances the
// order past the station, completes the work process and frees the worker's
// shift at every boundary except PACKING -> WAITING_FOR_PAYMENT, where the
// worker stays bound until payment resolves.
type CompleteStationCommandHandler struct {
	uowFactory StationUoWFactory
	gateway    ports.PaymentGateway
	clock      kernel.Clock
	notifier   Notifier
}

// NewCompleteStationCommandHandler creates a handler for station completion.
func NewCompleteStationCommandHandler(uowFactory StationUoWFactory, gateway ports.PaymentGateway, clock kernel.Clock, notifier Notifier) CompleteStationCommandHandler {
	return CompleteStationCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle processes the station completion. Completing PACKING branches on
// the payment status: paid orders get a delivery leg immediately, unpaid
// ones park at WAITING_FOR_PAYMENT.
func (h CompleteStationCommandHandler) Handle(ctx context.Context, cmd CompleteStationCommand) error {
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

	if err := requireAttendance(ctx, uow.AttendanceRepository(), cmd.WorkerID(), h.clock); err != nil {
		return err
	}

	shiftRepo := uow.WorkerShiftRepository()
	shift, err := shiftRepo.GetOpenByWorker(ctx, cmd.WorkerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewForbiddenError("complete station", "worker has no open shift")
	}
	if err != nil {
		return err
	}

	wpRepo := uow.WorkProcessRepository()
	wp, err := wpRepo.GetInProcessByShift(ctx, shift.ID())
	if err != nil {
		return err
	}
	if !wp.OrderID().IsEqual(cmd.OrderID()) {
		return errs.NewForbiddenError("complete station", "shift is processing another order")
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	station := shift.Station()
	paid := false
	if station == order.StationPacking {
		status, payErr := h.gateway.StatusFor(ctx, parent.ID())
		if payErr != nil {
			return payErr
		}
		paid = status.IsPaid()
	}

	if err = parent.CompleteStation(station, paid); err != nil {
		return err
	}

	if err = wp.Complete(now); err != nil {
		return err
	}
	if err = wpRepo.Update(ctx, wp); err != nil {
		return err
	}

	// The shift is freed at every station boundary except the one where the
	// order parks at WAITING_FOR_PAYMENT: the packing worker owns the order
	// until payment unblocks it.
	if parent.Status() != order.WaitingForPayment {
		if err = shift.Close(now); err != nil {
			return err
		}
		if err = shiftRepo.Update(ctx, shift); err != nil {
			return err
		}
	}

	note, err := h.nextStepNotification(ctx, uow, parent, station, now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parent); err != nil {
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

// nextStepNotification builds the fan-out for whoever acts next, creating
// the delivery leg when packing completed paid.
func (h CompleteStationCommandHandler) nextStepNotification(
	ctx context.Context,
	uow StationUoW,
	parent *order.Order,
	station order.Station,
	now time.Time,
) (*notification.Notification, error) {
	switch parent.Status() {
	case order.ReadyForDelivery:
		deliveryID := kernel.NewUUID()
		deliveryOrder, err := delivery.NewDeliveryOrder(deliveryID, parent.ID(), delivery.Number(now, deliveryID))
		if err != nil {
			return nil, err
		}
		if err = uow.DeliveryOrderRepository().Add(ctx, deliveryOrder); err != nil {
			return nil, err
		}
		return notification.NewNotification(
			kernel.NewUUID(),
			"New delivery available",
			fmt.Sprintf("Order %s is packed and ready for delivery", parent.OrderNumber()),
			notification.DriversAudience{OutletID: parent.OutletID()},
			now,
		)

	case order.WaitingForPayment:
		return notification.NewNotification(
			kernel.NewUUID(),
			"Payment required",
			fmt.Sprintf("Order %s is packed, please pay the invoice: %s", parent.OrderNumber(), parent.InvoiceURL()),
			notification.CustomerAudience{CustomerID: parent.CustomerID()},
			now,
		)

	default:
		next, _ := station.Next()
		return notification.NewNotification(
			kernel.NewUUID(),
			fmt.Sprintf("New %s task", next.String()),
			fmt.Sprintf("Order %s is ready for %s", parent.OrderNumber(), next.String()),
			notification.WorkersAudience{OutletID: parent.OutletID(), Station: next},
			now,
		)
	}
}
