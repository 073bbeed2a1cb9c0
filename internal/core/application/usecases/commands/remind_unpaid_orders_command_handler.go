package commands

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
)

// RemindUnpaidOrdersCommandHandler nudges customers whose orders have been
// waiting for payment longer than the reminder threshold.
type RemindUnpaidOrdersCommandHandler struct {
	uowFactory  SweepUoWFactory
	remindAfter time.Duration
	clock       kernel.Clock
	notifier    Notifier
}

// NewRemindUnpaidOrdersCommandHandler creates the reminder handler.
func NewRemindUnpaidOrdersCommandHandler(uowFactory SweepUoWFactory, remindAfter time.Duration, clock kernel.Clock, notifier Notifier) RemindUnpaidOrdersCommandHandler {
	return RemindUnpaidOrdersCommandHandler{
		uowFactory:  uowFactory,
		remindAfter: remindAfter,
		clock:       clock,
		notifier:    notifier,
	}
}

// Handle runs one reminder pass and reports how many customers it nudged.
func (h RemindUnpaidOrdersCommandHandler) Handle(ctx context.Context, cmd RemindUnpaidOrdersCommand) (int, error) {
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

	orders, err := uow.OrderRepository().GetUnpaidSince(ctx, now.Add(-h.remindAfter))
	if err != nil {
		return 0, err
	}

	notificationRepo := uow.NotificationRepository()
	notes := make([]*notification.Notification, 0, len(orders))
	for _, unpaid := range orders {
		note, noteErr := notification.NewNotification(
			kernel.NewUUID(),
			"Payment reminder",
			fmt.Sprintf("Order %s is still waiting for payment: %s", unpaid.OrderNumber(), unpaid.InvoiceURL()),
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
	return len(notes), nil
}
