// Package attendancerepo persists daily attendance records. A partial unique
// index allows at most one open record per user.
package attendancerepo

import (
	"time"

	"laundry/internal/core/domain/model/attendance"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AttendanceDTO is the database row for one attendance record.
type AttendanceDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	CheckIn  time.Time
	CheckOut *time.Time
}

// TableName overrides GORM's default naming to use "attendances".
func (AttendanceDTO) TableName() string {
	return "attendances"
}

func fromDomain(aggregate *attendance.Attendance) AttendanceDTO {
	return AttendanceDTO{
		ID:       aggregate.ID().Bytes(),
		UserID:   aggregate.UserID().Bytes(),
		CheckIn:  aggregate.CheckIn(),
		CheckOut: aggregate.CheckOut(),
	}
}

func toDomain(dto AttendanceDTO) (*attendance.Attendance, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return attendance.RestoreAttendance(id, userID, dto.CheckIn, dto.CheckOut)
}
