package notificationrepo

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
// Audience resolution happens here, in the same transaction as the state
// change that produced the notification, so the recipient set is consistent
// with what the change saw.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add persists the notification and its resolved recipients. An admin
// audience with no registered admins fails with NoAdminsForOutlet; any other
// audience resolving to zero recipients succeeds with no recipient rows.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	dto := fromDomain(aggregate)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	switch audience := aggregate.Audience().(type) {
	case notification.CustomerAudience:
		recipient := RecipientDTO{NotificationID: dto.ID, UserID: audience.CustomerID.Bytes()}
		return db.Create(&recipient).Error

	case notification.WorkerAudience:
		recipient := RecipientDTO{NotificationID: dto.ID, UserID: audience.WorkerID.Bytes()}
		return db.Create(&recipient).Error

	case notification.WorkersAudience:
		return db.Exec(`
			INSERT INTO notification_recipients (notification_id, user_id, is_read)
			SELECT ?, s.user_id, FALSE
			FROM staff_members s
			JOIN attendances a ON a.user_id = s.user_id AND a.check_out IS NULL
			WHERE s.role = ? AND s.outlet_id = ? AND s.station = ?
		`, dto.ID, int(staff.RoleWorker), audience.OutletID.Bytes(), int(audience.Station)).Error

	case notification.DriversAudience:
		return db.Exec(`
			INSERT INTO notification_recipients (notification_id, user_id, is_read)
			SELECT ?, s.user_id, FALSE
			FROM staff_members s
			JOIN attendances a ON a.user_id = s.user_id AND a.check_out IS NULL
			WHERE s.role = ? AND s.outlet_id = ?
		`, dto.ID, int(staff.RoleDriver), audience.OutletID.Bytes()).Error

	case notification.AdminsAudience:
		result := db.Exec(`
			INSERT INTO notification_recipients (notification_id, user_id, is_read)
			SELECT ?, s.user_id, FALSE
			FROM staff_members s
			WHERE s.role = ? AND s.outlet_id = ?
		`, dto.ID, int(staff.RoleAdmin), audience.OutletID.Bytes())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewNoAdminsForOutletError(audience.OutletID.String())
		}
		return nil

	default:
		return fmt.Errorf("unsupported notification audience %T", audience)
	}
}
