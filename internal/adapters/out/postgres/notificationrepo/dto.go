// Package notificationrepo persists notifications and resolves audiences to
// concrete recipient rows inside the caller's transaction.
package notificationrepo

import (
	"time"

	"laundry/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the database row for one notification.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Description string
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// RecipientDTO is one resolved recipient of a notification. IsRead starts
// false and is flipped by the read-marking API outside this core.
type RecipientDTO struct {
	NotificationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsRead         bool      `gorm:"not null;default:false"`
}

// TableName overrides GORM's default naming to use "notification_recipients".
func (RecipientDTO) TableName() string {
	return "notification_recipients"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}
