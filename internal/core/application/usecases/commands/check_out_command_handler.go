package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// CheckOutCommandHandler closes the user's open attendance record for the day.
type CheckOutCommandHandler struct {
	uowFactory AttendanceUoWFactory
	clock      kernel.Clock
}

// NewCheckOutCommandHandler creates a handler for clock-out.
func NewCheckOutCommandHandler(uowFactory AttendanceUoWFactory, clock kernel.Clock) CheckOutCommandHandler {
	return CheckOutCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the clock-out. A user who is not clocked in today gets
// AttendanceRequired.
func (h CheckOutCommandHandler) Handle(ctx context.Context, cmd CheckOutCommand) error {
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
	record, err := repo.GetOpenInWindow(ctx, cmd.UserID(), start, end)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewAttendanceRequiredError(cmd.UserID().String())
	}
	if err != nil {
		return err
	}

	if err = record.Close(now); err != nil {
		return err
	}

	if err = repo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
