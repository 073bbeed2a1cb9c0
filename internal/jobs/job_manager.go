package jobs

import (
	"fmt"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	workerShiftSweep        *WorkerShiftSweepJob
	driverAttendanceSweep   *DriverAttendanceSweepJob
	unpaidOrderReminder     *UnpaidOrderReminderJob
	unpaidOrderCancellation *UnpaidOrderCancellationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	workerShiftsHandler commands.CheckoutExpiredWorkerShiftsCommandHandler,
	driverAttendanceHandler commands.CheckoutExpiredDriverAttendanceCommandHandler,
	remindUnpaidHandler commands.RemindUnpaidOrdersCommandHandler,
	cancelUnpaidHandler commands.CancelUnpaidOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workerShiftSweep:        NewWorkerShiftSweepJob(workerShiftsHandler, logger),
		driverAttendanceSweep:   NewDriverAttendanceSweepJob(driverAttendanceHandler, logger),
		unpaidOrderReminder:     NewUnpaidOrderReminderJob(remindUnpaidHandler, logger),
		unpaidOrderCancellation: NewUnpaidOrderCancellationJob(cancelUnpaidHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start. Jobs already started are
// stopped again so a partial start never leaks a running scheduler.
func (jm *JobManager) StartAll() error {
	started := make([]interface{ Stop() }, 0, 4)

	for _, job := range []struct {
		name string
		job  interface {
			Start() error
			Stop()
		}
	}{
		{"worker shift sweep", jm.workerShiftSweep},
		{"driver attendance sweep", jm.driverAttendanceSweep},
		{"unpaid order reminder", jm.unpaidOrderReminder},
		{"unpaid order cancellation", jm.unpaidOrderCancellation},
	} {
		if err := job.job.Start(); err != nil {
			for _, s := range started {
				s.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", job.name, err)
		}
		started = append(started, job.job)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.unpaidOrderCancellation.Stop()
	jm.unpaidOrderReminder.Stop()
	jm.driverAttendanceSweep.Stop()
	jm.workerShiftSweep.Stop()
}
