package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/model/work"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// ProcessStationResult is the outcome of a process-station attempt. A
// manifest mismatch is not an error: NeedBypass is true, nothing was
// mutated, and the worker must separately request a bypass.
type ProcessStationResult struct {
	NeedBypass bool
	ShiftID    kernel.UUID
}

// ProcessStationCommandHandler starts station work for an order: derives the
// current station from the order's status, checks the submitted item counts
// against the manifest and, on a match, atomically opens a worker shift and
// claims the station's work process.
type ProcessStationCommandHandler struct {
	uowFactory StationUoWFactory
	checker    services.ManifestChecker
	clock      kernel.Clock
}

// NewProcessStationCommandHandler creates a handler for station processing.
func NewProcessStationCommandHandler(uowFactory StationUoWFactory, clock kernel.Clock) ProcessStationCommandHandler {
	return ProcessStationCommandHandler{
		uowFactory: uowFactory,
		checker:    services.NewManifestChecker(),
		clock:      clock,
	}
}

// Handle processes the station claim. A PENDING work process left by bypass
// resolution is claimed with a conditional update; a live IN_PROCESS or
// BYPASS_REQUESTED one fails with StationAlreadyClaimed.
func (h ProcessStationCommandHandler) Handle(ctx context.Context, cmd ProcessStationCommand) (ProcessStationResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessStationResult{}, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProcessStationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := requireAttendance(ctx, uow.AttendanceRepository(), cmd.WorkerID(), h.clock); err != nil {
		return ProcessStationResult{}, err
	}

	member, err := requireRole(ctx, uow.StaffRepository(), cmd.WorkerID(), staff.RoleWorker, "process station")
	if err != nil {
		return ProcessStationResult{}, err
	}

	shiftRepo := uow.WorkerShiftRepository()
	if err = assertWorkerFree(ctx, shiftRepo, cmd.WorkerID()); err != nil {
		return ProcessStationResult{}, err
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ProcessStationResult{}, err
	}

	if !member.WorksAt(parent.OutletID()) {
		return ProcessStationResult{}, errs.NewForbiddenError("process station", "order belongs to another outlet")
	}

	station, err := order.StationForStatus(parent.Status())
	if err != nil {
		return ProcessStationResult{}, err
	}

	wpRepo := uow.WorkProcessRepository()
	existing, err := wpRepo.GetLiveByOrderAndStation(ctx, cmd.OrderID(), station)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return ProcessStationResult{}, err
	}
	if existing != nil && existing.Status() != work.Pending {
		return ProcessStationResult{}, errs.NewStationAlreadyClaimedError(cmd.OrderID().String(), station.String())
	}

	manifest, err := orderRepo.GetItems(ctx, cmd.OrderID())
	if err != nil {
		return ProcessStationResult{}, err
	}

	if !h.checker.Matches(manifest, cmd.SubmittedItems()) {
		return ProcessStationResult{NeedBypass: true}, nil
	}

	shift, err := work.NewWorkerShift(kernel.NewUUID(), cmd.WorkerID(), parent.OutletID(), station, now)
	if err != nil {
		return ProcessStationResult{}, err
	}

	if err = shiftRepo.Add(ctx, shift); err != nil {
		return ProcessStationResult{}, err
	}

	if existing != nil {
		// Claim the PENDING row queued by bypass resolution. The conditional
		// update is the authoritative exclusivity decision.
		if err = wpRepo.Claim(ctx, existing.ID(), shift.ID()); err != nil {
			return ProcessStationResult{}, err
		}
	} else {
		wp, wpErr := work.NewWorkProcess(kernel.NewUUID(), cmd.OrderID(), parent.OutletID(), shift.ID(), station)
		if wpErr != nil {
			return ProcessStationResult{}, wpErr
		}
		if err = wpRepo.Add(ctx, wp); err != nil {
			return ProcessStationResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ProcessStationResult{}, err
	}

	return ProcessStationResult{ShiftID: shift.ID()}, nil
}
