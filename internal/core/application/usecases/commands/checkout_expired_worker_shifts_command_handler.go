package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// CheckoutExpiredWorkerShiftsCommandHandler force-closes open worker shifts
// whose scheduled half-day end has passed, stamping the scheduled end as the
// close time so a late sweep does not inflate worked hours.
type CheckoutExpiredWorkerShiftsCommandHandler struct {
	uowFactory SweepUoWFactory
	clock      kernel.Clock
}

// NewCheckoutExpiredWorkerShiftsCommandHandler creates the sweep handler.
func NewCheckoutExpiredWorkerShiftsCommandHandler(uowFactory SweepUoWFactory, clock kernel.Clock) CheckoutExpiredWorkerShiftsCommandHandler {
	return CheckoutExpiredWorkerShiftsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle runs one sweep pass and reports how many shifts it closed.
func (h CheckoutExpiredWorkerShiftsCommandHandler) Handle(ctx context.Context, cmd CheckoutExpiredWorkerShiftsCommand) (int, error) {
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

	repo := uow.WorkerShiftRepository()
	shifts, err := repo.GetOpenStartedBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, shift := range shifts {
		if !shift.ScheduledEnd().Before(now) {
			continue
		}
		if err = shift.Close(shift.ScheduledEnd()); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, shift); err != nil {
			return 0, err
		}
		closed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return closed, nil
}
