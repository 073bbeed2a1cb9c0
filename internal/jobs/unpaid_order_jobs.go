package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// UnpaidOrderReminderJob re-notifies customers whose orders sit at
// WAITING_FOR_PAYMENT past the reminder threshold. Runs hourly.
type UnpaidOrderReminderJob struct {
	handler commands.RemindUnpaidOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewUnpaidOrderReminderJob creates the unpaid order reminder sweep.
func NewUnpaidOrderReminderJob(handler commands.RemindUnpaidOrdersCommandHandler, logger *slog.Logger) *UnpaidOrderReminderJob {
	return &UnpaidOrderReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "unpaid_order_reminder_job"),
	}
}

// Start schedules the reminder sweep to run at the top of every hour.
func (j *UnpaidOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		reminded, err := j.handler.Handle(ctx, commands.NewRemindUnpaidOrdersCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Unpaid order reminder sweep failed", "error", err)
			return
		}
		if reminded > 0 {
			j.logger.InfoContext(ctx, "Reminded customers about unpaid orders", "count", reminded)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unpaid order reminder sweep started (running hourly)")
	return nil
}

// Stop stops the sweep.
func (j *UnpaidOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unpaid order reminder sweep stopped")
}

// UnpaidOrderCancellationJob cancels orders that stayed unpaid past the
// cancellation deadline, freeing the packing worker's shift. Runs hourly.
type UnpaidOrderCancellationJob struct {
	handler commands.CancelUnpaidOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewUnpaidOrderCancellationJob creates the unpaid order cancellation sweep.
func NewUnpaidOrderCancellationJob(handler commands.CancelUnpaidOrdersCommandHandler, logger *slog.Logger) *UnpaidOrderCancellationJob {
	return &UnpaidOrderCancellationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "unpaid_order_cancellation_job"),
	}
}

// Start schedules the cancellation sweep to run at the top of every hour,
// offset from the reminder by half an hour so a customer is never reminded
// and cancelled in the same tick.
func (j *UnpaidOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("30 * * * *", func() {
		ctx := context.Background()

		cancelled, err := j.handler.Handle(ctx, commands.NewCancelUnpaidOrdersCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Unpaid order cancellation sweep failed", "error", err)
			return
		}
		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled unpaid orders", "count", cancelled)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unpaid order cancellation sweep started (running hourly)")
	return nil
}

// Stop stops the sweep.
func (j *UnpaidOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unpaid order cancellation sweep stopped")
}
