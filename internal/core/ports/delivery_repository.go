package ports

import (
	"context"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
)

// DeliveryOrderRepository defines the persistence contract for delivery legs.
type DeliveryOrderRepository interface {
	// Add persists a new delivery leg.
	Add(ctx context.Context, aggregate *delivery.DeliveryOrder) error

	// Update persists changes to an existing delivery leg.
	Update(ctx context.Context, aggregate *delivery.DeliveryOrder) error

	// Get retrieves a delivery leg by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryOrder, error)

	// GetByOrderID retrieves the delivery leg of the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.DeliveryOrder, error)

	// Claim atomically binds the driver to an unassigned delivery leg with a
	// conditional update (driver_id IS NULL AND status = READY_FOR_DELIVERY).
	// Zero affected rows means another driver won and AlreadyAssigned is
	// returned.
	Claim(ctx context.Context, id, driverID kernel.UUID) error

	// CountActiveByDriver counts delivery legs the driver currently holds in
	// DELIVERY_ON_THE_WAY. Used by the driver exclusivity guard.
	CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)
}
