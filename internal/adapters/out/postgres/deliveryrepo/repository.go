package deliveryrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryOrderRepository implements DeliveryOrderRepository using GORM.
type GormDeliveryOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryOrderRepository creates a new GORM delivery order repository.
func NewGormDeliveryOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryOrderRepository {
	return &GormDeliveryOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery leg to the database. The unique index on order_id
// allows one leg per order; the loser of racing creators (duplicate paid
// webhooks, webhook racing station completion) gets AlreadyAssigned.
func (r *GormDeliveryOrderRepository) Add(ctx context.Context, aggregate *delivery.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewAlreadyAssignedError("delivery order for order", aggregate.OrderID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery leg to the database.
func (r *GormDeliveryOrderRepository) Update(ctx context.Context, aggregate *delivery.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryOrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery leg by ID.
func (r *GormDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the delivery leg of an order.
func (r *GormDeliveryOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.DeliveryOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim binds the driver to an unassigned delivery leg with a conditional
// update. Zero affected rows means another driver won the race.
func (r *GormDeliveryOrderRepository) Claim(ctx context.Context, id, driverID kernel.UUID) error {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&DeliveryOrderDTO{}).
		Where("id = ? AND driver_id IS NULL AND status = ?", id.Bytes(), delivery.ReadyForDelivery).
		Updates(map[string]any{
			"driver_id": driverID.Bytes(),
			"status":    int(delivery.DeliveryOnTheWay),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewAlreadyAssignedError("delivery order", id.String())
	}

	return nil
}

// CountActiveByDriver counts the driver's delivery legs that are still en route.
func (r *GormDeliveryOrderRepository) CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryOrderDTO{}).
		Where("driver_id = ? AND status = ?", driverID.Bytes(), delivery.DeliveryOnTheWay).
		Count(&count).Error
	return count, err
}
