// Package postgres provides the GORM-based Unit of Work and repositories for
// the fulfillment core. Each command handler gets a fresh unit of work whose
// repositories share one transaction, so a failed handler leaves no partial
// writes.
package postgres

import (
	"context"

	"laundry/internal/adapters/out/postgres/attendancerepo"
	"laundry/internal/adapters/out/postgres/deliveryrepo"
	"laundry/internal/adapters/out/postgres/notificationrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/pickuprepo"
	"laundry/internal/adapters/out/postgres/staffrepo"
	"laundry/internal/adapters/out/postgres/workrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work with proper
// isolation from concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the fulfillment
// repositories and tracks the aggregates modified inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are no-ops so no nested transactions are created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PickupOrderRepository returns a pickup repository bound to the current transaction.
func (uow *GormUnitOfWork) PickupOrderRepository() ports.PickupOrderRepository {
	return pickuprepo.NewGormPickupOrderRepository(uow.conn(), uow)
}

// DeliveryOrderRepository returns a delivery repository bound to the current transaction.
func (uow *GormUnitOfWork) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return deliveryrepo.NewGormDeliveryOrderRepository(uow.conn(), uow)
}

// WorkProcessRepository returns a work process repository bound to the current transaction.
func (uow *GormUnitOfWork) WorkProcessRepository() ports.WorkProcessRepository {
	return workrepo.NewGormWorkProcessRepository(uow.conn(), uow)
}

// WorkerShiftRepository returns a worker shift repository bound to the current transaction.
func (uow *GormUnitOfWork) WorkerShiftRepository() ports.WorkerShiftRepository {
	return workrepo.NewGormWorkerShiftRepository(uow.conn(), uow)
}

// AttendanceRepository returns an attendance repository bound to the current transaction.
func (uow *GormUnitOfWork) AttendanceRepository() ports.AttendanceRepository {
	return attendancerepo.NewGormAttendanceRepository(uow.conn(), uow)
}

// NotificationRepository returns a notification repository bound to the current transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

// StaffRepository returns a staff registry reader bound to the current transaction.
func (uow *GormUnitOfWork) StaffRepository() ports.StaffRepository {
	return staffrepo.NewGormStaffRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repositories call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
