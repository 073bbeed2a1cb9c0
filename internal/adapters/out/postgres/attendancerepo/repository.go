package attendancerepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/attendance"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAttendanceRepository implements AttendanceRepository using GORM.
type GormAttendanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAttendanceRepository creates a new GORM attendance repository.
func NewGormAttendanceRepository(db *gorm.DB, tracker aggregateTracker) *GormAttendanceRepository {
	return &GormAttendanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new attendance record to the database.
func (r *GormAttendanceRepository) Add(ctx context.Context, aggregate *attendance.Attendance) error {
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

// Update saves an existing attendance record to the database.
func (r *GormAttendanceRepository) Update(ctx context.Context, aggregate *attendance.Attendance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AttendanceDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetOpenInWindow retrieves the user's open record inside the day window.
func (r *GormAttendanceRepository) GetOpenInWindow(ctx context.Context, userID kernel.UUID, start, end time.Time) (*attendance.Attendance, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto AttendanceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND check_out IS NULL AND check_in >= ? AND check_in <= ?",
			userID.Bytes(), start, end).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("attendance", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenCheckedInBefore retrieves open records whose check-in predates the
// cutoff. The attendance sweep force-closes them.
func (r *GormAttendanceRepository) GetOpenCheckedInBefore(ctx context.Context, cutoff time.Time) ([]*attendance.Attendance, error) {
	var dtos []AttendanceDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "check_out IS NULL AND check_in < ?", cutoff).Error
	if err != nil {
		return nil, err
	}

	records := make([]*attendance.Attendance, 0, len(dtos))
	for _, dto := range dtos {
		record, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		records = append(records, record)
	}

	return records, nil
}
