// Package staffrepo reads the staff registry. The registry is reference data
// maintained outside the fulfillment core, so the repository is read-only.
package staffrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffMemberDTO is the database row for one registry entry.
type StaffMemberDTO struct {
	UserID   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Role     int        `gorm:"index"`
	OutletID *uuid.UUID `gorm:"type:uuid;index"`
	Station  *int
}

// TableName overrides GORM's default naming to use "staff_members".
func (StaffMemberDTO) TableName() string {
	return "staff_members"
}

func toDomain(dto StaffMemberDTO) (staff.Member, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return staff.Member{}, err
	}

	member := staff.Member{
		UserID: userID,
		Role:   staff.Role(dto.Role),
	}

	if dto.OutletID != nil {
		outletID, outletErr := kernel.UUIDFromBytes((*dto.OutletID)[:])
		if outletErr != nil {
			return staff.Member{}, outletErr
		}
		member.OutletID = &outletID
	}

	if dto.Station != nil {
		station := order.Station(*dto.Station)
		member.Station = &station
	}

	return member, nil
}
