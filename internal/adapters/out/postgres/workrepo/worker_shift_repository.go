package workrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/work"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkerShiftRepository implements WorkerShiftRepository using GORM.
type GormWorkerShiftRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormWorkerShiftRepository creates a new GORM worker shift repository.
func NewGormWorkerShiftRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkerShiftRepository {
	return &GormWorkerShiftRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shift to the database. The partial unique index on open
// shifts rejects a second open shift for the same worker.
func (r *GormWorkerShiftRepository) Add(ctx context.Context, aggregate *work.WorkerShift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := shiftFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewWorkerBusyError(aggregate.WorkerID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shift to the database.
func (r *GormWorkerShiftRepository) Update(ctx context.Context, aggregate *work.WorkerShift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := shiftFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkerShiftDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shift by ID.
func (r *GormWorkerShiftRepository) Get(ctx context.Context, id kernel.UUID) (*work.WorkerShift, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerShiftDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker shift", id.String())
		}
		return nil, err
	}

	return shiftToDomain(dto)
}

// GetOpenByWorker retrieves the worker's open shift.
func (r *GormWorkerShiftRepository) GetOpenByWorker(ctx context.Context, workerID kernel.UUID) (*work.WorkerShift, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerShiftDTO
	err := r.db.WithContext(ctx).
		First(&dto, "worker_id = ? AND end_time IS NULL", workerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker shift", workerID.String())
		}
		return nil, err
	}

	return shiftToDomain(dto)
}

// GetOpenStartedBefore retrieves open shifts that started before the cutoff.
func (r *GormWorkerShiftRepository) GetOpenStartedBefore(ctx context.Context, cutoff time.Time) ([]*work.WorkerShift, error) {
	var dtos []WorkerShiftDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "end_time IS NULL AND start_time < ?", cutoff).Error
	if err != nil {
		return nil, err
	}

	shifts := make([]*work.WorkerShift, 0, len(dtos))
	for _, dto := range dtos {
		shift, toErr := shiftToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}
