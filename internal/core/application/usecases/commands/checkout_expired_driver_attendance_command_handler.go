package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// CheckoutExpiredDriverAttendanceCommandHandler closes attendance records
// that were never checked out, stamping the end of their check-in day.
// Without it a driver who forgot to clock out yesterday would pass today's
// attendance gate.
type CheckoutExpiredDriverAttendanceCommandHandler struct {
	uowFactory SweepUoWFactory
	clock      kernel.Clock
}

// NewCheckoutExpiredDriverAttendanceCommandHandler creates the sweep handler.
func NewCheckoutExpiredDriverAttendanceCommandHandler(uowFactory SweepUoWFactory, clock kernel.Clock) CheckoutExpiredDriverAttendanceCommandHandler {
	return CheckoutExpiredDriverAttendanceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle runs one sweep pass and reports how many records it closed.
func (h CheckoutExpiredDriverAttendanceCommandHandler) Handle(ctx context.Context, cmd CheckoutExpiredDriverAttendanceCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	dayStart, _ := kernel.DayWindow(h.clock.Now())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AttendanceRepository()
	records, err := repo.GetOpenCheckedInBefore(ctx, dayStart)
	if err != nil {
		return 0, err
	}

	for _, record := range records {
		_, dayEnd := kernel.DayWindow(record.CheckIn())
		if err = record.Close(dayEnd); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, record); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(records), nil
}
