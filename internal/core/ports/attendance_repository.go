package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/attendance"
	"laundry/internal/core/domain/model/kernel"
)

// AttendanceRepository defines the persistence contract for attendance records.
type AttendanceRepository interface {
	// Add persists a new attendance record.
	Add(ctx context.Context, aggregate *attendance.Attendance) error

	// Update persists changes to an existing attendance record.
	Update(ctx context.Context, aggregate *attendance.Attendance) error

	// GetOpenInWindow retrieves the user's open attendance record whose
	// check-in falls inside [start, end], or ObjectNotFound when the user
	// is not clocked in. Every state-changing driver and worker action
	// gates on this lookup over the current local day.
	GetOpenInWindow(ctx context.Context, userID kernel.UUID, start, end time.Time) (*attendance.Attendance, error)

	// GetOpenCheckedInBefore retrieves open records whose check-in is before
	// the cutoff. The driver expiry sweep force-closes them at end of day.
	GetOpenCheckedInBefore(ctx context.Context, cutoff time.Time) ([]*attendance.Attendance, error)
}
