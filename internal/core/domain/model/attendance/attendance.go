// Package attendance models the daily clock-in record that gates every
// state-changing driver and worker action. A user has at most one open
// (checkOut = nil) record per local day.
package attendance

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrAttendanceIsNotConstructed is returned when an Attendance was not
	// created through NewAttendance or RestoreAttendance.
	ErrAttendanceIsNotConstructed = errors.New("Attendance must be created via NewAttendance or RestoreAttendance constructor")
)

// Attendance is one user's clock-in record for one day.
type Attendance struct {
	id       kernel.UUID
	userID   kernel.UUID
	checkIn  time.Time
	checkOut *time.Time

	guard guard.ConstructorGuard
}

// NewAttendance opens a clock-in record at the given time.
func NewAttendance(id, userID kernel.UUID, checkIn time.Time) (*Attendance, error) {
	a := &Attendance{
		checkIn: checkIn,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAttendance reconstructs a record from persistence.
func RestoreAttendance(id, userID kernel.UUID, checkIn time.Time, checkOut *time.Time) (*Attendance, error) {
	a, err := NewAttendance(id, userID, checkIn)
	if err != nil {
		return nil, err
	}
	a.checkOut = checkOut
	return a, nil
}

// Validate ensures the Attendance was created through a constructor.
func (a *Attendance) Validate() error {
	if a == nil {
		return ErrAttendanceIsNotConstructed
	}
	return a.guard.Validate(ErrAttendanceIsNotConstructed)
}

// ID returns the record's unique identifier.
func (a *Attendance) ID() kernel.UUID { return a.id }

// UserID returns the clocked-in user.
func (a *Attendance) UserID() kernel.UUID { return a.userID }

// CheckIn returns the clock-in time.
func (a *Attendance) CheckIn() time.Time { return a.checkIn }

// CheckOut returns the clock-out time, nil while the record is open.
func (a *Attendance) CheckOut() *time.Time { return a.checkOut }

// IsOpen reports whether the user is still clocked in on this record.
func (a *Attendance) IsOpen() bool { return a.checkOut == nil }

// Close clocks the user out.
func (a *Attendance) Close(at time.Time) error {
	if a.checkOut != nil {
		return errs.NewInvalidTransitionError("check out", "CHECKED_OUT")
	}

	a.checkOut = &at
	return nil
}

func (a *Attendance) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Attendance) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}
