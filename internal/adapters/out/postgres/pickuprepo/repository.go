package pickuprepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pickup"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickupOrderRepository implements PickupOrderRepository using GORM.
type GormPickupOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickupOrderRepository creates a new GORM pickup order repository.
func NewGormPickupOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupOrderRepository {
	return &GormPickupOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup leg to the database.
func (r *GormPickupOrderRepository) Add(ctx context.Context, aggregate *pickup.PickupOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing pickup leg to the database.
func (r *GormPickupOrderRepository) Update(ctx context.Context, aggregate *pickup.PickupOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PickupOrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pickup leg by ID.
func (r *GormPickupOrderRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.PickupOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the pickup leg of an order.
func (r *GormPickupOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*pickup.PickupOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PickupOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim binds the driver to an unassigned pickup leg with a conditional
// update. Zero affected rows means another driver won the race.
func (r *GormPickupOrderRepository) Claim(ctx context.Context, id, driverID kernel.UUID) error {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&PickupOrderDTO{}).
		Where("id = ? AND driver_id IS NULL AND status = ?", id.Bytes(), pickup.WaitingForPickup).
		Updates(map[string]any{
			"driver_id": driverID.Bytes(),
			"status":    int(pickup.LaundryOnTheWay),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewAlreadyAssignedError("pickup order", id.String())
	}

	return nil
}

// CountActiveByDriver counts the driver's pickup legs that are still en route.
func (r *GormPickupOrderRepository) CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&PickupOrderDTO{}).
		Where("driver_id = ? AND status = ?", driverID.Bytes(), pickup.LaundryOnTheWay).
		Count(&count).Error
	return count, err
}
