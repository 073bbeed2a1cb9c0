package order

import (
	"laundry/internal/pkg/errs"
)

// Station is one of the three fixed processing stages an order's items pass
// through inside an outlet. The ordering WASHING -> IRONING -> PACKING is
// fixed; Next is an exhaustive switch so adding a station is a compile-time
// checked change rather than a silent lookup miss.
type Station int

const (
	// StationUnknown represents an invalid or undefined station.
	StationUnknown Station = iota

	// StationWashing is the first processing stage.
	StationWashing

	// StationIroning is the second processing stage.
	StationIroning

	// StationPacking is the final processing stage. It has no successor;
	// completing it branches on the order's payment status instead.
	StationPacking
)

func getStationStrings() map[Station]string {
	return map[Station]string{
		StationUnknown: "UNKNOWN",
		StationWashing: "WASHING",
		StationIroning: "IRONING",
		StationPacking: "PACKING",
	}
}

// Validate checks that the Station is one of the defined enum values.
func (s Station) Validate() error {
	switch s {
	case StationWashing, StationIroning, StationPacking:
		return nil
	case StationUnknown:
		return errs.NewValueIsInvalidError("station")
	default:
		return errs.NewValueIsInvalidError("station")
	}
}

// StationFromString parses a wire name like "IRONING" into a Station.
func StationFromString(s string) (Station, error) {
	for station, str := range getStationStrings() {
		if str == s && station != StationUnknown {
			return station, nil
		}
	}
	return StationUnknown, errs.NewValueIsInvalidError("station")
}

// String returns the wire name of the station, e.g. "IRONING".
func (s Station) String() string {
	if str, ok := getStationStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the successor station. ok is false for PACKING, which has no
// successor and branches on payment status when completed.
func (s Station) Next() (next Station, ok bool) {
	switch s {
	case StationWashing:
		return StationIroning, true
	case StationIroning:
		return StationPacking, true
	case StationPacking:
		return StationUnknown, false
	case StationUnknown:
		return StationUnknown, false
	default:
		return StationUnknown, false
	}
}

// Status returns the order status an order carries while this station is
// processing it.
func (s Station) Status() Status {
	switch s {
	case StationWashing:
		return Washing
	case StationIroning:
		return Ironing
	case StationPacking:
		return Packing
	case StationUnknown:
		return Unknown
	default:
		return Unknown
	}
}

// CompletionStatus returns the order status that completing this station
// produces. PACKING is the branch point: a successful payment sends the order
// straight to READY_FOR_DELIVERY, otherwise it parks at WAITING_FOR_PAYMENT.
func (s Station) CompletionStatus(paid bool) (Status, error) {
	if next, ok := s.Next(); ok {
		return next.Status(), nil
	}
	if s != StationPacking {
		return Unknown, errs.NewValueIsInvalidError("station")
	}
	if paid {
		return ReadyForDelivery, nil
	}
	return WaitingForPayment, nil
}

// StationForStatus derives the station currently responsible for an order
// from its status: the reverse of the successor map. An order parked at
// WAITING_FOR_PAYMENT still belongs to PACKING, since the packing worker's
// shift stays open until payment resolves. Any other status means the order
// is not at a station and the attempted worker action is an invalid
// transition.
func StationForStatus(status Status) (Station, error) {
	switch status {
	case Washing:
		return StationWashing, nil
	case Ironing:
		return StationIroning, nil
	case Packing, WaitingForPayment:
		return StationPacking, nil
	default:
		return StationUnknown, errs.NewInvalidTransitionError("process station", status.String())
	}
}
