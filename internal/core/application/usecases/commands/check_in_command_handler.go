package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/attendance"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// CheckInCommandHandler opens the user's daily attendance record. At most
// one open record per user per day; the check here is advisory and the
// partial unique index catches a racing double check-in.
type CheckInCommandHandler struct {
	uowFactory AttendanceUoWFactory
	clock      kernel.Clock
}

// NewCheckInCommandHandler creates a handler for clock-in.
func NewCheckInCommandHandler(uowFactory AttendanceUoWFactory, clock kernel.Clock) CheckInCommandHandler {
	return CheckInCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the clock-in.
func (h CheckInCommandHandler) Handle(ctx context.Context, cmd CheckInCommand) error {
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

	repo := uow.AttendanceRepository()

	start, end := kernel.DayWindow(now)
	_, err := repo.GetOpenInWindow(ctx, cmd.UserID(), start, end)
	if err == nil {
		return errs.NewInvalidTransitionError("check in", "CHECKED_IN")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	record, err := attendance.NewAttendance(kernel.NewUUID(), cmd.UserID(), now)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
