package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// requireAttendance is the attendance gate: every state-changing driver and
// worker action passes through it. It fails with AttendanceRequired unless
// the user has an open attendance record inside the current local day.
func requireAttendance(ctx context.Context, repo ports.AttendanceRepository, userID kernel.UUID, now kernel.Clock) error {
	start, end := kernel.DayWindow(now.Now())
	_, err := repo.GetOpenInWindow(ctx, userID, start, end)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewAttendanceRequiredError(userID.String())
	}
	return err
}

// requireRole loads the actor's registry row and checks the expected role.
func requireRole(ctx context.Context, repo ports.StaffRepository, userID kernel.UUID, role staff.Role, action string) (staff.Member, error) {
	member, err := repo.Get(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return staff.Member{}, errs.NewForbiddenError(action, "actor is not registered")
	}
	if err != nil {
		return staff.Member{}, err
	}
	if member.Role != role {
		return staff.Member{}, errs.NewForbiddenError(action, "actor role is "+member.Role.String())
	}
	return member, nil
}

// assertDriverFree is the driver side of the exclusivity guard: a driver may
// hold at most one active pickup or delivery leg. This is an advisory
// pre-check; the conditional claim in the repository is the authoritative
// truth for races.
func assertDriverFree(ctx context.Context, pickups ports.PickupOrderRepository, deliveries ports.DeliveryOrderRepository, driverID kernel.UUID) error {
	pickupCount, err := pickups.CountActiveByDriver(ctx, driverID)
	if err != nil {
		return err
	}
	deliveryCount, err := deliveries.CountActiveByDriver(ctx, driverID)
	if err != nil {
		return err
	}
	if pickupCount > 0 || deliveryCount > 0 {
		return errs.NewDriverBusyError(driverID.String())
	}
	return nil
}

// assertWorkerFree is the worker side of the exclusivity guard: a worker may
// hold at most one open shift. Like assertDriverFree this is advisory; the
// partial unique index on open shifts catches the race at insert time.
func assertWorkerFree(ctx context.Context, shifts ports.WorkerShiftRepository, workerID kernel.UUID) error {
	_, err := shifts.GetOpenByWorker(ctx, workerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return errs.NewWorkerBusyError(workerID.String())
}

// closePackingShift frees the packing worker's shift once an order leaves
// WAITING_FOR_PAYMENT, whether payment settled or the order was cancelled.
// The shift was deliberately left open while the order parked there, so both
// exits must release the worker. Idempotent: a missing process, an unbound
// process or an already closed shift are all fine.
func closePackingShift(ctx context.Context, processes ports.WorkProcessRepository, shifts ports.WorkerShiftRepository, orderID kernel.UUID, now time.Time) error {
	wp, err := processes.GetLastByOrderAndStation(ctx, orderID, order.StationPacking)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if wp.Shift() == nil {
		return nil
	}

	shift, err := shifts.Get(ctx, *wp.Shift())
	if err != nil {
		return err
	}
	if !shift.IsOpen() {
		return nil
	}

	if err = shift.Close(now); err != nil {
		return err
	}
	return shifts.Update(ctx, shift)
}
