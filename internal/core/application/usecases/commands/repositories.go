// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches, so tests mock the
// narrowest possible surface.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PickupRepoFactory provides access to the pickup repository within a transaction.
	PickupRepoFactory interface {
		PickupOrderRepository() ports.PickupOrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// WorkProcessRepoFactory provides access to the work process repository within a transaction.
	WorkProcessRepoFactory interface {
		WorkProcessRepository() ports.WorkProcessRepository
	}

	// WorkerShiftRepoFactory provides access to the worker shift repository within a transaction.
	WorkerShiftRepoFactory interface {
		WorkerShiftRepository() ports.WorkerShiftRepository
	}

	// AttendanceRepoFactory provides access to the attendance repository within a transaction.
	AttendanceRepoFactory interface {
		AttendanceRepository() ports.AttendanceRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// StaffRepoFactory provides access to the staff registry within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// AttendanceUoW manages transactions for the check-in/check-out operations.
	AttendanceUoW interface {
		TxManager
		AttendanceRepoFactory
	}

	// AttendanceUoWFactory creates attendance unit of work instances.
	AttendanceUoWFactory interface {
		Create() AttendanceUoW
	}

	// PickupUoW manages transactions for the pickup leg: request, accept and
	// complete. Accepting needs both leg repositories for the driver
	// exclusivity guard.
	PickupUoW interface {
		TxManager
		OrderRepoFactory
		PickupRepoFactory
		DeliveryRepoFactory
		AttendanceRepoFactory
		StaffRepoFactory
		NotificationRepoFactory
	}

	// PickupUoWFactory creates pickup unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// DeliveryUoW manages transactions for the delivery leg operations.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		PickupRepoFactory
		DeliveryRepoFactory
		AttendanceRepoFactory
		StaffRepoFactory
		NotificationRepoFactory
	}

	// DeliveryUoWFactory creates delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// StationUoW manages transactions for the station pipeline: washing
	// assignment, processing, completion and the bypass path.
	StationUoW interface {
		TxManager
		OrderRepoFactory
		WorkProcessRepoFactory
		WorkerShiftRepoFactory
		DeliveryRepoFactory
		AttendanceRepoFactory
		StaffRepoFactory
		NotificationRepoFactory
	}

	// StationUoWFactory creates station unit of work instances.
	StationUoWFactory interface {
		Create() StationUoW
	}

	// PaymentUoW manages transactions for the payment webhook operation.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		WorkProcessRepoFactory
		WorkerShiftRepoFactory
		NotificationRepoFactory
	}

	// PaymentUoWFactory creates payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// SweepUoW manages transactions for the idempotent expiry sweeps.
	SweepUoW interface {
		TxManager
		OrderRepoFactory
		WorkProcessRepoFactory
		WorkerShiftRepoFactory
		AttendanceRepoFactory
		NotificationRepoFactory
	}

	// SweepUoWFactory creates sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}
)
