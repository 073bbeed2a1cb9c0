package services

import (
	"laundry/internal/core/domain/model/order"
)

// ManifestChecker decides whether a worker's submitted item counts agree with
// the order's persisted manifest. A mismatch is not an error: the station
// pipeline treats it as a first-class result and routes the worker to the
// bypass path instead of mutating any state.
type ManifestChecker struct{}

// NewManifestChecker creates a new ManifestChecker instance.
func NewManifestChecker() ManifestChecker {
	return ManifestChecker{}
}

// Matches reports whether submitted covers the manifest exactly: the same set
// of laundry item ids and the same quantity per id. Order of lines is
// irrelevant. Duplicate submitted lines for the same id are summed, mirroring
// how a worker counts pieces in separate batches.
func (c ManifestChecker) Matches(manifest, submitted []order.Item) bool {
	expected := make(map[string]int, len(manifest))
	for _, line := range manifest {
		expected[line.LaundryItemID().String()] += line.Quantity()
	}

	counted := make(map[string]int, len(submitted))
	for _, line := range submitted {
		counted[line.LaundryItemID().String()] += line.Quantity()
	}

	if len(counted) != len(expected) {
		return false
	}
	for id, qty := range expected {
		if counted[id] != qty {
			return false
		}
	}

	return true
}
