// Package payment holds the payment status vocabulary shared between the
// order aggregate and the payment gateway port.
package payment

import "laundry/internal/pkg/errs"

// Status is the state of an order's payment as reported by the gateway.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusSuccess
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		StatusPending: "PENDING",
		StatusSuccess: "SUCCESS",
		StatusFailed:  "FAILED",
	}
}

// StatusFromString parses a gateway status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("payment status")
}

// String returns the canonical SCREAMING_SNAKE representation.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return getStatusStrings()[StatusUnknown]
}

// IsPaid reports whether the payment has settled.
func (s Status) IsPaid() bool {
	return s == StatusSuccess
}

// Validate returns an error for the zero value.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsRequiredError("payment status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}
