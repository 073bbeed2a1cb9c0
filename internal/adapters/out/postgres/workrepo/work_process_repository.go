package workrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/work"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkProcessRepository implements WorkProcessRepository using GORM.
type GormWorkProcessRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkProcessRepository creates a new GORM work process repository.
func NewGormWorkProcessRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkProcessRepository {
	return &GormWorkProcessRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work process to the database.
func (r *GormWorkProcessRepository) Add(ctx context.Context, aggregate *work.WorkProcess) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := processFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work process to the database. The mutable columns
// are selected explicitly: struct-based Updates would skip zero values, and
// notes legally returns to empty when a bypass is resolved.
func (r *GormWorkProcessRepository) Update(ctx context.Context, aggregate *work.WorkProcess) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := processFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkProcessDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "notes", "shift_id", "completed_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work process by ID.
func (r *GormWorkProcessRepository) Get(ctx context.Context, id kernel.UUID) (*work.WorkProcess, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkProcessDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work process", id.String())
		}
		return nil, err
	}

	return processToDomain(dto)
}

// GetLiveByOrderAndStation retrieves the PENDING, IN_PROCESS or
// BYPASS_REQUESTED process for the order and station.
func (r *GormWorkProcessRepository) GetLiveByOrderAndStation(ctx context.Context, orderID kernel.UUID, station order.Station) (*work.WorkProcess, error) {
	if err := errors.Join(orderID.Validate(), station.Validate()); err != nil {
		return nil, err
	}

	var dto WorkProcessDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND station = ? AND status IN ?",
			orderID.Bytes(), int(station), []int{int(work.Pending), int(work.InProcess), int(work.BypassRequested)}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work process", orderID.String())
		}
		return nil, err
	}

	return processToDomain(dto)
}

// Claim moves a PENDING process to IN_PROCESS and binds the shift with a
// conditional update. Zero affected rows means another shift won the race.
func (r *GormWorkProcessRepository) Claim(ctx context.Context, id, shiftID kernel.UUID) error {
	if err := errors.Join(id.Validate(), shiftID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&WorkProcessDTO{}).
		Where("id = ? AND status = ? AND shift_id IS NULL", id.Bytes(), work.Pending).
		Updates(map[string]any{
			"shift_id": shiftID.Bytes(),
			"status":   int(work.InProcess),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto WorkProcessDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			return errs.NewObjectNotFoundError("work process", id.String())
		}
		orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
		if err != nil {
			return err
		}
		return errs.NewStationAlreadyClaimedError(orderID.String(), order.Station(dto.Station).String())
	}

	return nil
}

// GetInProcessByShift retrieves the IN_PROCESS process bound to the shift.
func (r *GormWorkProcessRepository) GetInProcessByShift(ctx context.Context, shiftID kernel.UUID) (*work.WorkProcess, error) {
	if err := shiftID.Validate(); err != nil {
		return nil, err
	}

	var dto WorkProcessDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shift_id = ? AND status = ?", shiftID.Bytes(), work.InProcess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work process", shiftID.String())
		}
		return nil, err
	}

	return processToDomain(dto)
}

// GetLastByOrderAndStation retrieves the most recent process for the order
// and station regardless of status.
func (r *GormWorkProcessRepository) GetLastByOrderAndStation(ctx context.Context, orderID kernel.UUID, station order.Station) (*work.WorkProcess, error) {
	if err := errors.Join(orderID.Validate(), station.Validate()); err != nil {
		return nil, err
	}

	var dto WorkProcessDTO
	err := r.db.WithContext(ctx).
		Order("completed_at DESC NULLS FIRST").
		First(&dto, "order_id = ? AND station = ?", orderID.Bytes(), int(station)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work process", orderID.String())
		}
		return nil, err
	}

	return processToDomain(dto)
}
