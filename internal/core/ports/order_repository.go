// Package ports defines the persistence and outbound contracts of the
// fulfillment core. These interfaces keep the domain and application layers
// free of infrastructure concerns and make command handlers testable.
package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its item manifest.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetItems retrieves the persisted item manifest of an order.
	GetItems(ctx context.Context, orderID kernel.UUID) ([]order.Item, error)

	// ReplaceItems replaces the order's item manifest, written when the
	// admin assigns pricing.
	ReplaceItems(ctx context.Context, orderID kernel.UUID, items []order.Item) error

	// GetUnpaidSince retrieves orders that have been waiting for payment
	// since before the cutoff. The expiry sweeps cancel or remind them.
	GetUnpaidSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
