package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/work"
)

// WorkProcessRepository defines the persistence contract for station work
// processes.
type WorkProcessRepository interface {
	// Add persists a new work process.
	Add(ctx context.Context, aggregate *work.WorkProcess) error

	// Update persists changes to an existing work process.
	Update(ctx context.Context, aggregate *work.WorkProcess) error

	// Get retrieves a work process by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*work.WorkProcess, error)

	// GetLiveByOrderAndStation retrieves the live (PENDING, IN_PROCESS or
	// BYPASS_REQUESTED) work process for the order and station, or
	// ObjectNotFound when none exists. At most one can be live at a time,
	// enforced by a partial unique index.
	GetLiveByOrderAndStation(ctx context.Context, orderID kernel.UUID, station order.Station) (*work.WorkProcess, error)

	// Claim atomically moves a PENDING work process to IN_PROCESS and binds
	// the worker's shift with a conditional update. Zero affected rows means
	// the station is already claimed or being bypassed and
	// StationAlreadyClaimed is returned.
	Claim(ctx context.Context, id, shiftID kernel.UUID) error

	// GetInProcessByShift retrieves the work process bound to the given
	// shift that is still IN_PROCESS, or ObjectNotFound when none exists.
	GetInProcessByShift(ctx context.Context, shiftID kernel.UUID) (*work.WorkProcess, error)

	// GetLastByOrderAndStation retrieves the most recent work process for
	// the order and station regardless of status, or ObjectNotFound.
	GetLastByOrderAndStation(ctx context.Context, orderID kernel.UUID, station order.Station) (*work.WorkProcess, error)
}

// WorkerShiftRepository defines the persistence contract for worker shifts.
type WorkerShiftRepository interface {
	// Add persists a new shift.
	Add(ctx context.Context, aggregate *work.WorkerShift) error

	// Update persists changes to an existing shift.
	Update(ctx context.Context, aggregate *work.WorkerShift) error

	// Get retrieves a shift by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*work.WorkerShift, error)

	// GetOpenByWorker retrieves the worker's open shift, or ObjectNotFound
	// when the worker is free. At most one shift per worker can be open,
	// enforced by a partial unique index.
	GetOpenByWorker(ctx context.Context, workerID kernel.UUID) (*work.WorkerShift, error)

	// GetOpenStartedBefore retrieves open shifts that started before the
	// cutoff. The shift expiry sweep force-closes them.
	GetOpenStartedBefore(ctx context.Context, cutoff time.Time) ([]*work.WorkerShift, error)
}
