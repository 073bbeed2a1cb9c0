package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the transaction
// started by Begin. A failed command rolls the whole unit back, so no
// partial row mutation survives.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// PickupOrderRepository returns a PickupOrderRepository bound to the current transaction.
	PickupOrderRepository() PickupOrderRepository

	// DeliveryOrderRepository returns a DeliveryOrderRepository bound to the current transaction.
	DeliveryOrderRepository() DeliveryOrderRepository

	// WorkProcessRepository returns a WorkProcessRepository bound to the current transaction.
	WorkProcessRepository() WorkProcessRepository

	// WorkerShiftRepository returns a WorkerShiftRepository bound to the current transaction.
	WorkerShiftRepository() WorkerShiftRepository

	// AttendanceRepository returns an AttendanceRepository bound to the current transaction.
	AttendanceRepository() AttendanceRepository

	// NotificationRepository returns a NotificationRepository bound to the current transaction.
	NotificationRepository() NotificationRepository

	// StaffRepository returns a StaffRepository bound to the current transaction.
	StaffRepository() StaffRepository
}
