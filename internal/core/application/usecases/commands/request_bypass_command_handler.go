package commands

import (
	"context"
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"
)

// RequestBypassCommandHandler suspends the worker's in-process station visit
// and fans the escalation out to the outlet's admins.
//
// The state change and the notification run in separate transactions on
// purpose: a missing-admins configuration gap fails the notification but
// must not roll the BYPASS_REQUESTED mark back.
type RequestBypassCommandHandler struct {
	uowFactory StationUoWFactory
	clock      kernel.Clock
	notifier   Notifier
}

// NewRequestBypassCommandHandler creates a handler for bypass escalation.
func NewRequestBypassCommandHandler(uowFactory StationUoWFactory, clock kernel.Clock, notifier Notifier) RequestBypassCommandHandler {
	return RequestBypassCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle processes the escalation. Fails with NoAdminsForOutlet when the
// outlet has no registered admins; the work process still ends up
// BYPASS_REQUESTED in that case.
func (h RequestBypassCommandHandler) Handle(ctx context.Context, cmd RequestBypassCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	outletID, err := h.markBypassRequested(ctx, cmd)
	if err != nil {
		return err
	}

	return h.notifyAdmins(ctx, cmd, outletID)
}

func (h RequestBypassCommandHandler) markBypassRequested(ctx context.Context, cmd RequestBypassCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := requireAttendance(ctx, uow.AttendanceRepository(), cmd.WorkerID(), h.clock); err != nil {
		return kernel.UUID{}, err
	}

	shift, err := uow.WorkerShiftRepository().GetOpenByWorker(ctx, cmd.WorkerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, errs.NewForbiddenError("request bypass", "worker has no open shift")
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	wpRepo := uow.WorkProcessRepository()
	wp, err := wpRepo.GetInProcessByShift(ctx, shift.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !wp.OrderID().IsEqual(cmd.OrderID()) {
		return kernel.UUID{}, errs.NewForbiddenError("request bypass", "shift is processing another order")
	}

	if err = wp.RequestBypass(cmd.Reason()); err != nil {
		return kernel.UUID{}, err
	}
	if err = wpRepo.Update(ctx, wp); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return wp.OutletID(), nil
}

func (h RequestBypassCommandHandler) notifyAdmins(ctx context.Context, cmd RequestBypassCommand, outletID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	admins, err := uow.StaffRepository().CountAdminsOfOutlet(ctx, outletID)
	if err != nil {
		return err
	}
	if admins == 0 {
		return errs.NewNoAdminsForOutletError(outletID.String())
	}

	note, err := notification.NewNotification(
		kernel.NewUUID(),
		"Bypass requested",
		fmt.Sprintf("Item count mismatch on order %s: %s", cmd.OrderID().String(), cmd.Reason()),
		notification.AdminsAudience{OutletID: outletID},
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Push(ctx, note)
	return nil
}
