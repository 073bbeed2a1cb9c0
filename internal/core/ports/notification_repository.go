package ports

import (
	"context"

	"laundry/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
// Implementations resolve the notification's audience to concrete recipient
// rows inside the same transaction as the state change that produced it.
type NotificationRepository interface {
	// Add resolves the audience and persists one row per recipient.
	// Resolving an AdminsAudience against an outlet with no registered
	// admins fails with NoAdminsForOutlet; other audiences resolving to
	// nobody persist nothing and succeed.
	Add(ctx context.Context, aggregate *notification.Notification) error
}
