package order

import (
	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
// It implements the canonical state machine of the fulfillment pipeline;
// every transition in the system goes through one of the methods below and
// an action attempted from a state that is not a legal source fails with
// an InvalidTransitionError reporting both the action and the current state.
//
// State transitions:
//
//	LOOKING_FOR_DRIVER ─┬─> LAUNDRY_ON_THE_WAY ─> ARRIVED_AT_OUTLET ─> WASHING
//	WAITING_FOR_PICKUP ─┘
//	WASHING ─> IRONING ─> PACKING ─┬─> READY_FOR_DELIVERY (payment succeeded)
//	                               └─> WAITING_FOR_PAYMENT ─┬─> READY_FOR_DELIVERY (paid)
//	                                                        └─> CANCELLED (unpaid deadline)
//	READY_FOR_DELIVERY ─> DELIVERY_ON_THE_WAY ─> COMPLETED
//
// COMPLETED and CANCELLED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// LookingForDriver is an initial status for pickup requests that have not
	// yet been broadcast to a specific outlet's driver pool.
	LookingForDriver

	// WaitingForPickup is the initial status of a pickup request waiting for
	// a driver to accept it.
	WaitingForPickup

	// LaundryOnTheWay indicates a driver accepted the pickup and is bringing
	// the laundry to the outlet.
	LaundryOnTheWay

	// ArrivedAtOutlet indicates the pickup leg finished; the order waits for
	// an admin to weigh it, price it and assign it to washing.
	ArrivedAtOutlet

	// Washing, Ironing and Packing are the three fixed processing stations.
	Washing
	Ironing
	Packing

	// WaitingForPayment holds the order after packing until the customer pays.
	WaitingForPayment

	// ReadyForDelivery indicates the order can be claimed by a delivery driver.
	ReadyForDelivery

	// DeliveryOnTheWay indicates a driver is delivering the order.
	DeliveryOnTheWay

	// Completed is the terminal status of a delivered order.
	Completed

	// Cancelled is the terminal status of an order cancelled by the unpaid sweep.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		LookingForDriver:  "LOOKING_FOR_DRIVER",
		WaitingForPickup:  "WAITING_FOR_PICKUP",
		LaundryOnTheWay:   "LAUNDRY_ON_THE_WAY",
		ArrivedAtOutlet:   "ARRIVED_AT_OUTLET",
		Washing:           "WASHING",
		Ironing:           "IRONING",
		Packing:           "PACKING",
		WaitingForPayment: "WAITING_FOR_PAYMENT",
		ReadyForDelivery:  "READY_FOR_DELIVERY",
		DeliveryOnTheWay:  "DELIVERY_ON_THE_WAY",
		Completed:         "COMPLETED",
		Cancelled:         "CANCELLED",
	}
}

// Validate checks that the Status is one of the defined enum values.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from persistence.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status, e.g. "WAITING_FOR_PICKUP".
// Implements fmt.Stringer; safe on any value, invalid ones map to "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// AcceptPickup transitions to LAUNDRY_ON_THE_WAY when a driver accepts the
// pickup. Legal from WAITING_FOR_PICKUP and LOOKING_FOR_DRIVER.
func (s Status) AcceptPickup() (Status, error) {
	if s != WaitingForPickup && s != LookingForDriver {
		return Unknown, errs.NewInvalidTransitionError("accept pickup", s.String())
	}
	return LaundryOnTheWay, nil
}

// CompletePickup transitions to ARRIVED_AT_OUTLET when the driver drops the
// laundry off. Legal only from LAUNDRY_ON_THE_WAY.
func (s Status) CompletePickup() (Status, error) {
	if s != LaundryOnTheWay {
		return Unknown, errs.NewInvalidTransitionError("complete pickup", s.String())
	}
	return ArrivedAtOutlet, nil
}

// AssignWashing transitions to WASHING when an admin prices the order and
// sends it into the station pipeline. Legal only from ARRIVED_AT_OUTLET.
func (s Status) AssignWashing() (Status, error) {
	if s != ArrivedAtOutlet {
		return Unknown, errs.NewInvalidTransitionError("assign washing", s.String())
	}
	return Washing, nil
}

// MarkPaid transitions to READY_FOR_DELIVERY when the payment gateway reports
// the order paid. Legal only from WAITING_FOR_PAYMENT.
func (s Status) MarkPaid() (Status, error) {
	if s != WaitingForPayment {
		return Unknown, errs.NewInvalidTransitionError("mark paid", s.String())
	}
	return ReadyForDelivery, nil
}

// AcceptDelivery transitions to DELIVERY_ON_THE_WAY when a driver claims the
// delivery. Legal only from READY_FOR_DELIVERY.
func (s Status) AcceptDelivery() (Status, error) {
	if s != ReadyForDelivery {
		return Unknown, errs.NewInvalidTransitionError("accept delivery", s.String())
	}
	return DeliveryOnTheWay, nil
}

// CompleteDelivery transitions to the terminal COMPLETED status.
// Legal only from DELIVERY_ON_THE_WAY.
func (s Status) CompleteDelivery() (Status, error) {
	if s != DeliveryOnTheWay {
		return Unknown, errs.NewInvalidTransitionError("complete delivery", s.String())
	}
	return Completed, nil
}

// CancelUnpaid transitions to the terminal CANCELLED status when the unpaid
// deadline elapses. Legal only from WAITING_FOR_PAYMENT.
func (s Status) CancelUnpaid() (Status, error) {
	if s != WaitingForPayment {
		return Unknown, errs.NewInvalidTransitionError("cancel unpaid", s.String())
	}
	return Cancelled, nil
}
