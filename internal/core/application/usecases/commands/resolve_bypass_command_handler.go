package commands

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/model/work"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// ResolveBypassCommandHandler closes an escalated work process by admin
// decision: the bound worker is freed, the reason note cleared, and the
// order either advances to the successor station (queuing a PENDING work
// process for the next free worker) or finalizes to payment/delivery
// readiness.
type ResolveBypassCommandHandler struct {
	uowFactory StationUoWFactory
	gateway    ports.PaymentGateway
	clock      kernel.Clock
	notifier   Notifier
}

// NewResolveBypassCommandHandler creates a handler for bypass resolution.
func NewResolveBypassCommandHandler(uowFactory StationUoWFactory, gateway ports.PaymentGateway, clock kernel.Clock, notifier Notifier) ResolveBypassCommandHandler {
	return ResolveBypassCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle processes the resolution. Resolving an already-completed work
// process fails with BypassAlreadyResolved and never double-advances the
// order.
func (h ResolveBypassCommandHandler) Handle(ctx context.Context, cmd ResolveBypassCommand) error {
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

	wpRepo := uow.WorkProcessRepository()
	wp, err := wpRepo.Get(ctx, cmd.WorkProcessID())
	if err != nil {
		return err
	}

	member, err := requireRole(ctx, uow.StaffRepository(), cmd.AdminID(), staff.RoleAdmin, "resolve bypass")
	if err != nil {
		return err
	}
	if !member.WorksAt(wp.OutletID()) {
		return errs.NewForbiddenError("resolve bypass", "work process belongs to another outlet")
	}

	boundShift := wp.Shift()

	if err = wp.ResolveBypass(now); err != nil {
		return err
	}
	if err = wpRepo.Update(ctx, wp); err != nil {
		return err
	}

	var workerID *kernel.UUID
	if boundShift != nil {
		shiftRepo := uow.WorkerShiftRepository()
		shift, shiftErr := shiftRepo.Get(ctx, *boundShift)
		if shiftErr != nil {
			return shiftErr
		}
		if shift.IsOpen() {
			if err = shift.Close(now); err != nil {
				return err
			}
			if err = shiftRepo.Update(ctx, shift); err != nil {
				return err
			}
		}
		id := shift.WorkerID()
		workerID = &id
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, wp.OrderID())
	if err != nil {
		return err
	}

	paid := false
	if wp.Station() == order.StationPacking {
		status, payErr := h.gateway.StatusFor(ctx, parent.ID())
		if payErr != nil {
			return payErr
		}
		paid = status.IsPaid()
	}

	if err = parent.CompleteStation(wp.Station(), paid); err != nil {
		return err
	}

	if next, ok := wp.Station().Next(); ok {
		pending, pendErr := work.NewPendingWorkProcess(kernel.NewUUID(), parent.ID(), parent.OutletID(), next)
		if pendErr != nil {
			return pendErr
		}
		if err = wpRepo.Add(ctx, pending); err != nil {
			return err
		}
	}

	followUp, err := h.nextStepNotification(ctx, uow, parent, wp.Station(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parent); err != nil {
		return err
	}

	notes := []*notification.Notification{followUp}
	if workerID != nil {
		resolved, noteErr := notification.NewNotification(
			kernel.NewUUID(),
			"Bypass resolved",
			fmt.Sprintf("Your bypass request for order %s was resolved", parent.OrderNumber()),
			notification.WorkerAudience{WorkerID: *workerID},
			now,
		)
		if noteErr != nil {
			return noteErr
		}
		notes = append(notes, resolved)
	}

	notificationRepo := uow.NotificationRepository()
	for _, note := range notes {
		if err = notificationRepo.Add(ctx, note); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, note := range notes {
		h.notifier.Push(ctx, note)
	}
	return nil
}

// nextStepNotification wakes up whoever resumes the pipeline: the next
// station's workers, delivery drivers, or the customer waiting to pay.
func (h ResolveBypassCommandHandler) nextStepNotification(
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
