package work

import (
	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of one station visit.
//
//	PENDING -> IN_PROCESS -> COMPLETED
//	              └> BYPASS_REQUESTED -> COMPLETED (admin resolution)
//
// PENDING rows exist only when a bypass resolution queued the next station;
// a worker claims them instead of creating a fresh row.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending marks a station visit queued by a bypass resolution, waiting
	// for a worker to claim it.
	Pending

	// InProcess marks a station visit a worker shift is actively working.
	InProcess

	// BypassRequested marks a station visit suspended on an item-count
	// mismatch, waiting for an admin to adjudicate.
	BypassRequested

	// Completed is the terminal status of a station visit.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Pending:         "PENDING",
		InProcess:       "IN_PROCESS",
		BypassRequested: "BYPASS_REQUESTED",
		Completed:       "COMPLETED",
	}
}

// Validate checks that the Status is one of the defined enum values.
func (s Status) Validate() error {
	switch s {
	case Pending, InProcess, BypassRequested, Completed:
		return nil
	case Unknown:
		return errs.NewValueIsInvalidError("status")
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsLive reports whether the visit still occupies its (order, station) slot.
// The station-level mutual-exclusion invariant allows at most one live row
// per (order, station).
func (s Status) IsLive() bool {
	return s == Pending || s == InProcess || s == BypassRequested
}
