package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WorkerShiftSweepJob closes worker shifts that outlived their scheduled
// window. Runs every minute.
type WorkerShiftSweepJob struct {
	handler commands.CheckoutExpiredWorkerShiftsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorkerShiftSweepJob creates the expired worker shift sweep.
func NewWorkerShiftSweepJob(handler commands.CheckoutExpiredWorkerShiftsCommandHandler, logger *slog.Logger) *WorkerShiftSweepJob {
	return &WorkerShiftSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "worker_shift_sweep_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *WorkerShiftSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		closed, err := j.handler.Handle(ctx, commands.NewCheckoutExpiredWorkerShiftsCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Worker shift sweep failed", "error", err)
			return
		}
		if closed > 0 {
			j.logger.InfoContext(ctx, "Closed expired worker shifts", "count", closed)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Worker shift sweep started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *WorkerShiftSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Worker shift sweep stopped")
}

// DriverAttendanceSweepJob checks out drivers whose attendance day is over.
// Runs every minute.
type DriverAttendanceSweepJob struct {
	handler commands.CheckoutExpiredDriverAttendanceCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverAttendanceSweepJob creates the expired driver attendance sweep.
func NewDriverAttendanceSweepJob(handler commands.CheckoutExpiredDriverAttendanceCommandHandler, logger *slog.Logger) *DriverAttendanceSweepJob {
	return &DriverAttendanceSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "driver_attendance_sweep_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *DriverAttendanceSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		closed, err := j.handler.Handle(ctx, commands.NewCheckoutExpiredDriverAttendanceCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Driver attendance sweep failed", "error", err)
			return
		}
		if closed > 0 {
			j.logger.InfoContext(ctx, "Checked out expired driver attendance", "count", closed)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver attendance sweep started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *DriverAttendanceSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver attendance sweep stopped")
}
