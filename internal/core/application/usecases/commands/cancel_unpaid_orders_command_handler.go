package commands

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
)

// CancelUnpaidOrdersCommandHandler cancels orders that have been waiting for
// payment longer than the configured deadline and tells the customer.
type CancelUnpaidOrdersCommandHandler struct {
	uowFactory SweepUoWFactory
	deadline   time.Duration
	clock      kernel.Clock
	notifier   Notifier
}

// NewCancelUnpaidOrdersCommandHandler creates the sweep handler. deadline is
// how long an order may wait for payment before cancellation.
func NewCancelUnpaidOrdersCommandHandler(uowFactory SweepUoWFactory, deadline time.Duration, clock kernel.Clock, notifier Notifier) CancelUnpaidOrdersCommandHandler {
	return CancelUnpaidOrdersCommandHandler{
		uowFactory: uowFactory,
		deadline:   deadline,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle runs one sweep pass and reports how many orders it cancelled.
func (h CancelUnpaidOrdersCommandHandler) Handle(ctx context.Context, cmd CancelUnpaidOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetUnpaidSince(ctx, now.Add(-h.deadline))
	if err != nil {
		return 0, err
	}

	notificationRepo := uow.NotificationRepository()
	notes := make([]*notification.Notification, 0, len(orders))
	for _, unpaid := range orders {
		if err = unpaid.CancelUnpaid(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, unpaid); err != nil {
			return 0, err
		}

		// Cancellation is the other exit from WAITING_FOR_PAYMENT, so it
		// releases the packing worker the same way settlement does.
		if err = closePackingShift(ctx, uow.WorkProcessRepository(), uow.WorkerShiftRepository(), unpaid.ID(), now); err != nil {
			return 0, err
		}

		note, noteErr := notification.NewNotification(
			kernel.NewUUID(),
			"Order cancelled",
			fmt.Sprintf("Order %s was cancelled because the invoice was not paid in time", unpaid.OrderNumber()),
			notification.CustomerAudience{CustomerID: unpaid.CustomerID()},
			now,
		)
		if noteErr != nil {
			return 0, noteErr
		}
		if err = notificationRepo.Add(ctx, note); err != nil {
			return 0, err
		}
		notes = append(notes, note)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, note := range notes {
		h.notifier.Push(ctx, note)
	}
	return len(orders), nil
}
