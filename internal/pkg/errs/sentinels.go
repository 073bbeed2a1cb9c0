package errs

import "errors"

// Sentinel errors identify the stable kind of every fatal failure the core
// can surface. Callers classify with errors.Is and the HTTP adapter maps
// each kind to a transport status code.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrValueIsRequired       = errors.New("value is required")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrAlreadyAssigned       = errors.New("already assigned")
	ErrStationAlreadyClaimed = errors.New("station already claimed")
	ErrWorkerBusy            = errors.New("worker busy")
	ErrDriverBusy            = errors.New("driver busy")
	ErrAttendanceRequired    = errors.New("attendance required")
	ErrBypassAlreadyResolved = errors.New("bypass already resolved")
	ErrNoAdminsForOutlet     = errors.New("no admins for outlet")
)
