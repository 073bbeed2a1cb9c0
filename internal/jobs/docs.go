// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps the fulfillment flow relies on.
//
// # Available Jobs
//
// 1. WorkerShiftSweepJob - Closes worker shifts that outlived their scheduled window (every minute)
// 2. DriverAttendanceSweepJob - Checks out drivers whose attendance day is over (every minute)
// 3. UnpaidOrderReminderJob - Re-notifies customers of orders parked at WAITING_FOR_PAYMENT (hourly)
// 4. UnpaidOrderCancellationJob - Cancels orders unpaid past the deadline (hourly, offset by 30 minutes)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(workerShiftsHandler, driverAttendanceHandler, remindHandler, cancelHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed job start
// stops any already running jobs.
package jobs
