package ports

import (
	"context"

	"laundry/internal/core/domain/model/notification"
)

// NotificationPublisher pushes a persisted notification to the delivery
// broker after the producing transaction commits. Publish failures are
// logged, never propagated: the database row is the source of truth and
// delivery is at-least-once from there.
type NotificationPublisher interface {
	Publish(ctx context.Context, aggregate *notification.Notification) error
}
