// Package kernel provides the core domain primitives shared by every model
// package of the laundry fulfillment core.
//
// It contains:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - Clock: the injected time source, with DayWindow for local-day boundaries
//
// These primitives are immutable and safe for concurrent use. Keeping the
// clock here (rather than time.Now calls scattered through the core) makes
// attendance-window and shift-boundary behavior testable.
package kernel
