package delivery

import (
	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery leg. It only ever moves forward:
//
//	READY_FOR_DELIVERY -> DELIVERY_ON_THE_WAY -> COMPLETED
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// ReadyForDelivery means no driver has claimed the delivery yet.
	ReadyForDelivery

	// DeliveryOnTheWay means a driver claimed the delivery and is en route.
	DeliveryOnTheWay

	// Completed is the terminal status of a delivered leg.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		ReadyForDelivery: "READY_FOR_DELIVERY",
		DeliveryOnTheWay: "DELIVERY_ON_THE_WAY",
		Completed:        "COMPLETED",
	}
}

// Validate checks that the Status is one of the defined enum values.
func (s Status) Validate() error {
	switch s {
	case ReadyForDelivery, DeliveryOnTheWay, Completed:
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

// Accept transitions to DELIVERY_ON_THE_WAY. Legal only from READY_FOR_DELIVERY.
func (s Status) Accept() (Status, error) {
	if s != ReadyForDelivery {
		return Unknown, errs.NewInvalidTransitionError("accept delivery", s.String())
	}
	return DeliveryOnTheWay, nil
}

// Complete transitions to COMPLETED. Legal only from DELIVERY_ON_THE_WAY.
func (s Status) Complete() (Status, error) {
	if s != DeliveryOnTheWay {
		return Unknown, errs.NewInvalidTransitionError("complete delivery", s.String())
	}
	return Completed, nil
}
