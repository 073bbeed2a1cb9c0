package work

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrWorkProcessIsNotConstructed is returned when a WorkProcess was not
	// created through one of its constructors.
	ErrWorkProcessIsNotConstructed = errors.New("WorkProcess must be created via NewWorkProcess, NewPendingWorkProcess or RestoreWorkProcess constructor")
)

// WorkProcess records one station visit for one order: the unit the
// station-level mutual-exclusion invariant protects. At most one row per
// (order, station) may be live (PENDING, IN_PROCESS or BYPASS_REQUESTED)
// at any time; the repository backs this with a partial unique index.
type WorkProcess struct {
	id       kernel.UUID
	orderID  kernel.UUID
	outletID kernel.UUID

	// shiftID binds the visit to a WorkerShift, not directly to a user.
	// Nil while the visit is PENDING.
	shiftID *kernel.UUID

	station     order.Station
	status      Status
	notes       string
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewWorkProcess creates an IN_PROCESS station visit bound to the claiming
// worker's shift. Used when a worker starts processing directly.
func NewWorkProcess(id, orderID, outletID, shiftID kernel.UUID, station order.Station) (*WorkProcess, error) {
	wp := &WorkProcess{
		status: InProcess,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wp.setID(id),
		wp.setOrderID(orderID),
		wp.setOutletID(outletID),
		wp.setStation(station),
		wp.bindShift(shiftID),
	); err != nil {
		return nil, err
	}

	return wp, nil
}

// NewPendingWorkProcess creates an unclaimed PENDING station visit. Used by
// bypass resolution to queue the successor station for the next free worker.
func NewPendingWorkProcess(id, orderID, outletID kernel.UUID, station order.Station) (*WorkProcess, error) {
	wp := &WorkProcess{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wp.setID(id),
		wp.setOrderID(orderID),
		wp.setOutletID(outletID),
		wp.setStation(station),
	); err != nil {
		return nil, err
	}

	return wp, nil
}

// RestoreWorkProcess reconstructs a station visit from persistence.
func RestoreWorkProcess(
	id, orderID, outletID kernel.UUID,
	shiftID *kernel.UUID,
	station order.Station,
	status Status,
	notes string,
	completedAt *time.Time,
) (*WorkProcess, error) {
	wp := &WorkProcess{
		shiftID:     shiftID,
		notes:       notes,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wp.setID(id),
		wp.setOrderID(orderID),
		wp.setOutletID(outletID),
		wp.setStation(station),
		wp.setStatus(status),
	); err != nil {
		return nil, err
	}

	return wp, nil
}

// Validate ensures the WorkProcess was created through a constructor.
func (wp *WorkProcess) Validate() error {
	if wp == nil {
		return ErrWorkProcessIsNotConstructed
	}
	return wp.guard.Validate(ErrWorkProcessIsNotConstructed)
}

// ID returns the station visit's unique identifier.
func (wp *WorkProcess) ID() kernel.UUID { return wp.id }

// OrderID returns the order being processed.
func (wp *WorkProcess) OrderID() kernel.UUID { return wp.orderID }

// OutletID returns the outlet the visit belongs to.
func (wp *WorkProcess) OutletID() kernel.UUID { return wp.outletID }

// Shift returns the bound worker shift's identifier, nil while PENDING.
func (wp *WorkProcess) Shift() *kernel.UUID { return wp.shiftID }

// Station returns the station of this visit.
func (wp *WorkProcess) Station() order.Station { return wp.station }

// Status returns the current status of the visit.
func (wp *WorkProcess) Status() Status { return wp.status }

// Notes returns the bypass reason note, empty outside the bypass path.
func (wp *WorkProcess) Notes() string { return wp.notes }

// CompletedAt returns when the visit completed, nil until then.
func (wp *WorkProcess) CompletedAt() *time.Time { return wp.completedAt }

// Claim binds a PENDING visit to a worker shift, moving it to IN_PROCESS.
// Claiming a visit that is not PENDING fails with StationAlreadyClaimed: the
// repository's conditional update makes the losing racer see the same error.
func (wp *WorkProcess) Claim(shiftID kernel.UUID) error {
	if err := shiftID.Validate(); err != nil {
		return err
	}
	if wp.status != Pending {
		return errs.NewStationAlreadyClaimedError(wp.orderID.String(), wp.station.String())
	}

	wp.status = InProcess
	wp.shiftID = &shiftID
	return nil
}

// RequestBypass suspends an IN_PROCESS visit on an item-count mismatch,
// recording the worker's reason for the admin.
func (wp *WorkProcess) RequestBypass(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if wp.status != InProcess {
		return errs.NewInvalidTransitionError("request bypass", wp.status.String())
	}

	wp.status = BypassRequested
	wp.notes = reason
	return nil
}

// Complete finishes an IN_PROCESS visit.
func (wp *WorkProcess) Complete(at time.Time) error {
	if wp.status != InProcess {
		return errs.NewInvalidTransitionError("complete work process", wp.status.String())
	}

	wp.status = Completed
	wp.completedAt = &at
	return nil
}

// ResolveBypass closes the visit by admin decision, clearing the reason note.
// A visit that already completed fails with BypassAlreadyResolved.
func (wp *WorkProcess) ResolveBypass(at time.Time) error {
	if wp.status == Completed {
		return errs.NewBypassAlreadyResolvedError(wp.id.String())
	}

	wp.status = Completed
	wp.notes = ""
	wp.completedAt = &at
	return nil
}

func (wp *WorkProcess) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	wp.id = id
	return nil
}

func (wp *WorkProcess) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	wp.orderID = orderID
	return nil
}

func (wp *WorkProcess) setOutletID(outletID kernel.UUID) error {
	if err := outletID.Validate(); err != nil {
		return err
	}
	wp.outletID = outletID
	return nil
}

func (wp *WorkProcess) setStation(station order.Station) error {
	if err := station.Validate(); err != nil {
		return err
	}
	wp.station = station
	return nil
}

func (wp *WorkProcess) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	wp.status = status
	return nil
}

func (wp *WorkProcess) bindShift(shiftID kernel.UUID) error {
	if err := shiftID.Validate(); err != nil {
		return err
	}
	wp.shiftID = &shiftID
	return nil
}
