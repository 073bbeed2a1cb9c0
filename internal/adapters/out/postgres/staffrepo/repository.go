package staffrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Get retrieves the registry entry of one user.
func (r *GormStaffRepository) Get(ctx context.Context, userID kernel.UUID) (staff.Member, error) {
	if err := userID.Validate(); err != nil {
		return staff.Member{}, err
	}

	var dto StaffMemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return staff.Member{}, errs.NewObjectNotFoundError("staff member", userID.String())
		}
		return staff.Member{}, err
	}

	return toDomain(dto)
}

// CountAdminsOfOutlet counts the admins registered at the outlet.
func (r *GormStaffRepository) CountAdminsOfOutlet(ctx context.Context, outletID kernel.UUID) (int64, error) {
	if err := outletID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&StaffMemberDTO{}).
		Where("role = ? AND outlet_id = ?", staff.RoleAdmin, outletID.Bytes()).
		Count(&count).Error
	return count, err
}
