package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/ports"
)

// Notifier pushes committed notifications to the delivery broker. Handlers
// call Push after Commit; the database rows written inside the transaction
// are the source of truth, so push failures are logged and swallowed.
type Notifier struct {
	publisher ports.NotificationPublisher
	log       *slog.Logger
}

// NewNotifier creates a Notifier over the given publisher.
func NewNotifier(publisher ports.NotificationPublisher, log *slog.Logger) Notifier {
	return Notifier{
		publisher: publisher,
		log:       log.With("component", "notifier"),
	}
}

// Push publishes the notification, logging any failure.
func (n Notifier) Push(ctx context.Context, aggregate *notification.Notification) {
	if err := n.publisher.Publish(ctx, aggregate); err != nil {
		n.log.Warn("notification push failed",
			"notification_id", aggregate.ID().String(),
			"error", err)
	}
}
