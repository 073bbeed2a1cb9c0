// Package errs provides the standardized error taxonomy of the laundry core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error kind follows the same shape:
//   - A sentinel error variable (e.g. ErrAlreadyAssigned)
//   - A struct type carrying the error details
//   - Constructor functions, with and without an underlying cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// The kinds cover both generic validation failures (value required/invalid,
// object not found) and the domain conflicts of the fulfillment pipeline:
// invalid state transitions, exclusivity violations (already assigned,
// station already claimed, worker/driver busy), attendance gating, and the
// bypass sub-protocol. A manifest mismatch is deliberately NOT an error kind;
// it is a first-class result of station processing.
package errs
