package pickup

import (
	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of a pickup leg. It only ever moves forward:
//
//	WAITING_FOR_PICKUP -> LAUNDRY_ON_THE_WAY -> ARRIVED_AT_OUTLET
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// WaitingForPickup means no driver has claimed the pickup yet.
	WaitingForPickup

	// LaundryOnTheWay means a driver claimed the pickup and is en route.
	LaundryOnTheWay

	// ArrivedAtOutlet is the terminal status of a finished pickup leg.
	ArrivedAtOutlet
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		WaitingForPickup: "WAITING_FOR_PICKUP",
		LaundryOnTheWay:  "LAUNDRY_ON_THE_WAY",
		ArrivedAtOutlet:  "ARRIVED_AT_OUTLET",
	}
}

// Validate checks that the Status is one of the defined enum values.
func (s Status) Validate() error {
	switch s {
	case WaitingForPickup, LaundryOnTheWay, ArrivedAtOutlet:
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

// Accept transitions to LAUNDRY_ON_THE_WAY. Legal only from WAITING_FOR_PICKUP.
func (s Status) Accept() (Status, error) {
	if s != WaitingForPickup {
		return Unknown, errs.NewInvalidTransitionError("accept pickup", s.String())
	}
	return LaundryOnTheWay, nil
}

// Complete transitions to ARRIVED_AT_OUTLET. Legal only from LAUNDRY_ON_THE_WAY.
func (s Status) Complete() (Status, error) {
	if s != LaundryOnTheWay {
		return Unknown, errs.NewInvalidTransitionError("complete pickup", s.String())
	}
	return ArrivedAtOutlet, nil
}
