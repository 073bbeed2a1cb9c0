package errs

import (
	"fmt"
	"strings"
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func formatCause(cause error) string {
	if cause == nil {
		return ""
	}
	return fmt.Sprintf(" (cause: %s)", sanitize(cause.Error()))
}

// ObjectNotFoundError indicates that a requested entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s%s",
			ErrObjectNotFound, e.ParamName, e.ID, formatCause(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return fmt.Sprintf("%s: %s%s", ErrValueIsRequired, e.ParamName, formatCause(e.Cause))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s%s", ErrValueIsInvalid, e.ParamName, formatCause(e.Cause))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ForbiddenError indicates that the acting user lacks the role or outlet
// scope required for the attempted operation.
type ForbiddenError struct {
	Action string
	Reason string
}

// NewForbiddenError creates a ForbiddenError for the given action and reason.
func NewForbiddenError(action, reason string) *ForbiddenError {
	return &ForbiddenError{Action: action, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: cannot %s: %s", ErrForbidden, e.Action, sanitize(e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidTransitionError indicates that an action is not legal from the
// entity's current state. Both the attempted action and the current state
// are reported so the caller can see exactly which transition was refused.
type InvalidTransitionError struct {
	Action  string
	Current string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the attempted
// action and the state it was attempted from.
func NewInvalidTransitionError(action, current string) *InvalidTransitionError {
	return &InvalidTransitionError{Action: action, Current: current}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from status %s", ErrInvalidTransition, e.Action, e.Current)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyAssignedError indicates that a pickup or delivery has already been
// claimed by another driver. It is produced when a conditional claim affects
// zero rows, which is the authoritative loss signal for claim races.
type AlreadyAssignedError struct {
	ParamName string
	ID        any
}

// NewAlreadyAssignedError creates an AlreadyAssignedError for the given entity.
func NewAlreadyAssignedError(paramName string, id any) *AlreadyAssignedError {
	return &AlreadyAssignedError{ParamName: paramName, ID: id}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrAlreadyAssigned, e.ParamName, e.ID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// StationAlreadyClaimedError indicates that another work process is already
// live for the same order and station.
type StationAlreadyClaimedError struct {
	OrderID any
	Station string
}

// NewStationAlreadyClaimedError creates a StationAlreadyClaimedError for the
// given order and station.
func NewStationAlreadyClaimedError(orderID any, station string) *StationAlreadyClaimedError {
	return &StationAlreadyClaimedError{OrderID: orderID, Station: station}
}

func (e *StationAlreadyClaimedError) Error() string {
	return fmt.Sprintf("%s: station %s of order %s", ErrStationAlreadyClaimed, e.Station, e.OrderID)
}

func (e *StationAlreadyClaimedError) Unwrap() error {
	return ErrStationAlreadyClaimed
}

// WorkerBusyError indicates that a worker already holds an open shift.
type WorkerBusyError struct {
	UserID any
}

// NewWorkerBusyError creates a WorkerBusyError for the given user.
func NewWorkerBusyError(userID any) *WorkerBusyError {
	return &WorkerBusyError{UserID: userID}
}

func (e *WorkerBusyError) Error() string {
	return fmt.Sprintf("%s: worker %s has an open shift", ErrWorkerBusy, e.UserID)
}

func (e *WorkerBusyError) Unwrap() error {
	return ErrWorkerBusy
}

// DriverBusyError indicates that a driver already holds an active pickup or
// delivery assignment.
type DriverBusyError struct {
	DriverID any
}

// NewDriverBusyError creates a DriverBusyError for the given driver.
func NewDriverBusyError(driverID any) *DriverBusyError {
	return &DriverBusyError{DriverID: driverID}
}

func (e *DriverBusyError) Error() string {
	return fmt.Sprintf("%s: driver %s has an active assignment", ErrDriverBusy, e.DriverID)
}

func (e *DriverBusyError) Unwrap() error {
	return ErrDriverBusy
}

// AttendanceRequiredError indicates that the acting user is not clocked in today.
type AttendanceRequiredError struct {
	UserID any
}

// NewAttendanceRequiredError creates an AttendanceRequiredError for the given user.
func NewAttendanceRequiredError(userID any) *AttendanceRequiredError {
	return &AttendanceRequiredError{UserID: userID}
}

func (e *AttendanceRequiredError) Error() string {
	return fmt.Sprintf("%s: user %s is not checked in", ErrAttendanceRequired, e.UserID)
}

func (e *AttendanceRequiredError) Unwrap() error {
	return ErrAttendanceRequired
}

// BypassAlreadyResolvedError indicates that a bypass request has already been
// closed by an admin.
type BypassAlreadyResolvedError struct {
	WorkProcessID any
}

// NewBypassAlreadyResolvedError creates a BypassAlreadyResolvedError for the
// given work process.
func NewBypassAlreadyResolvedError(workProcessID any) *BypassAlreadyResolvedError {
	return &BypassAlreadyResolvedError{WorkProcessID: workProcessID}
}

func (e *BypassAlreadyResolvedError) Error() string {
	return fmt.Sprintf("%s: work process %s", ErrBypassAlreadyResolved, e.WorkProcessID)
}

func (e *BypassAlreadyResolvedError) Unwrap() error {
	return ErrBypassAlreadyResolved
}

// NoAdminsForOutletError indicates that a bypass notification could not be
// delivered because the outlet has no registered admins. The underlying
// work-process state is not affected.
type NoAdminsForOutletError struct {
	OutletID any
}

// NewNoAdminsForOutletError creates a NoAdminsForOutletError for the given outlet.
func NewNoAdminsForOutletError(outletID any) *NoAdminsForOutletError {
	return &NoAdminsForOutletError{OutletID: outletID}
}

func (e *NoAdminsForOutletError) Error() string {
	return fmt.Sprintf("%s: outlet %s", ErrNoAdminsForOutlet, e.OutletID)
}

func (e *NoAdminsForOutletError) Unwrap() error {
	return ErrNoAdminsForOutlet
}
