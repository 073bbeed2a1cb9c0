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
	// ErrWorkerShiftIsNotConstructed is returned when a WorkerShift was not
	// created through NewWorkerShift or RestoreWorkerShift.
	ErrWorkerShiftIsNotConstructed = errors.New("WorkerShift must be created via NewWorkerShift or RestoreWorkerShift constructor")
)

// ShiftLabel names the half-day a worker shift belongs to.
type ShiftLabel int

const (
	// LabelUnknown represents an invalid or undefined label.
	LabelUnknown ShiftLabel = iota

	// Morning labels shifts opened before noon local time.
	Morning

	// Noon labels shifts opened at or after noon local time.
	Noon
)

// LabelFor computes the shift label from the opening time: MORNING when the
// local hour is before 12, NOON otherwise.
func LabelFor(at time.Time) ShiftLabel {
	if at.Hour() < 12 {
		return Morning
	}
	return Noon
}

// Validate checks that the ShiftLabel is one of the defined enum values.
func (l ShiftLabel) Validate() error {
	switch l {
	case Morning, Noon:
		return nil
	case LabelUnknown:
		return errs.NewValueIsInvalidError("shift")
	default:
		return errs.NewValueIsInvalidError("shift")
	}
}

// String returns the wire name of the label.
func (l ShiftLabel) String() string {
	switch l {
	case Morning:
		return "MORNING"
	case Noon:
		return "NOON"
	case LabelUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// WorkerShift is a worker's open-ended claim on one unit of station capacity,
// opened when the worker starts processing an order and closed by explicit
// completion or the expiry sweep.
//
// Invariant: a user has at most one shift with endTime = nil at a time; the
// repository backs this with a partial unique index on the worker id.
type WorkerShift struct {
	id       kernel.UUID
	workerID kernel.UUID
	outletID kernel.UUID
	station  order.Station
	label    ShiftLabel
	start    time.Time
	end      *time.Time

	guard guard.ConstructorGuard
}

// NewWorkerShift opens a shift at the given time. The label is derived from
// the opening hour.
func NewWorkerShift(id, workerID, outletID kernel.UUID, station order.Station, startedAt time.Time) (*WorkerShift, error) {
	ws := &WorkerShift{
		label: LabelFor(startedAt),
		start: startedAt,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ws.setID(id),
		ws.setWorkerID(workerID),
		ws.setOutletID(outletID),
		ws.setStation(station),
	); err != nil {
		return nil, err
	}

	return ws, nil
}

// RestoreWorkerShift reconstructs a shift from persistence.
func RestoreWorkerShift(
	id, workerID, outletID kernel.UUID,
	station order.Station,
	label ShiftLabel,
	start time.Time,
	end *time.Time,
) (*WorkerShift, error) {
	ws := &WorkerShift{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ws.setID(id),
		ws.setWorkerID(workerID),
		ws.setOutletID(outletID),
		ws.setStation(station),
		ws.setLabel(label),
	); err != nil {
		return nil, err
	}

	return ws, nil
}

// Validate ensures the WorkerShift was created through a constructor.
func (ws *WorkerShift) Validate() error {
	if ws == nil {
		return ErrWorkerShiftIsNotConstructed
	}
	return ws.guard.Validate(ErrWorkerShiftIsNotConstructed)
}

// ID returns the shift's unique identifier.
func (ws *WorkerShift) ID() kernel.UUID { return ws.id }

// WorkerID returns the user holding the shift.
func (ws *WorkerShift) WorkerID() kernel.UUID { return ws.workerID }

// OutletID returns the outlet the shift belongs to.
func (ws *WorkerShift) OutletID() kernel.UUID { return ws.outletID }

// Station returns the station the shift is working.
func (ws *WorkerShift) Station() order.Station { return ws.station }

// Label returns the half-day label of the shift.
func (ws *WorkerShift) Label() ShiftLabel { return ws.label }

// Start returns when the shift opened.
func (ws *WorkerShift) Start() time.Time { return ws.start }

// End returns when the shift closed, nil while open.
func (ws *WorkerShift) End() *time.Time { return ws.end }

// IsOpen reports whether the shift still claims the worker's capacity.
func (ws *WorkerShift) IsOpen() bool { return ws.end == nil }

// Close ends the shift. Closing an already-closed shift is an invalid
// transition so callers cannot silently double-free capacity.
func (ws *WorkerShift) Close(at time.Time) error {
	if ws.end != nil {
		return errs.NewInvalidTransitionError("close shift", "CLOSED")
	}

	ws.end = &at
	return nil
}

// ScheduledEnd returns the moment the shift's half-day window ends:
// noon for MORNING shifts, end of day for NOON shifts. The expiry sweep
// force-closes shifts whose window has passed.
func (ws *WorkerShift) ScheduledEnd() time.Time {
	year, month, day := ws.start.Date()
	if ws.label == Morning {
		return time.Date(year, month, day, 12, 0, 0, 0, ws.start.Location())
	}
	return time.Date(year, month, day, 23, 59, 59, 999999999, ws.start.Location())
}

func (ws *WorkerShift) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	ws.id = id
	return nil
}

func (ws *WorkerShift) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	ws.workerID = workerID
	return nil
}

func (ws *WorkerShift) setOutletID(outletID kernel.UUID) error {
	if err := outletID.Validate(); err != nil {
		return err
	}
	ws.outletID = outletID
	return nil
}

func (ws *WorkerShift) setStation(station order.Station) error {
	if err := station.Validate(); err != nil {
		return err
	}
	ws.station = station
	return nil
}

func (ws *WorkerShift) setLabel(label ShiftLabel) error {
	if err := label.Validate(); err != nil {
		return err
	}
	ws.label = label
	return nil
}
