package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pickup"
)

// PickupOrderRepository defines the persistence contract for pickup legs.
type PickupOrderRepository interface {
	// Add persists a new pickup leg.
	Add(ctx context.Context, aggregate *pickup.PickupOrder) error

	// Update persists changes to an existing pickup leg.
	Update(ctx context.Context, aggregate *pickup.PickupOrder) error

	// Get retrieves a pickup leg by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pickup.PickupOrder, error)

	// GetByOrderID retrieves the pickup leg of the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*pickup.PickupOrder, error)

	// Claim atomically binds the driver to an unassigned pickup leg with a
	// conditional update (driver_id IS NULL AND status = WAITING_FOR_PICKUP).
	// When the update affects zero rows another driver won the race and
	// AlreadyAssigned is returned.
	Claim(ctx context.Context, id, driverID kernel.UUID) error

	// CountActiveByDriver counts pickup legs the driver currently holds in
	// LAUNDRY_ON_THE_WAY. Used by the driver exclusivity guard.
	CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)
}
