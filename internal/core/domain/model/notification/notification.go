// Package notification models the messages fanned out to customers and staff
// after fulfillment events. The audience a notification targets is a sealed
// set of variants resolved to concrete recipients by the persistence layer.
package notification

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created via NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification constructor")
)

// Audience selects who receives a notification. Implementations form a sealed
// set; the storage adapter type-switches over them to resolve recipients.
type Audience interface {
	isAudience()
}

// CustomerAudience targets a single customer.
type CustomerAudience struct {
	CustomerID kernel.UUID
}

func (CustomerAudience) isAudience() {}

// WorkerAudience targets a single worker, used to tell the requester their
// bypass was resolved.
type WorkerAudience struct {
	WorkerID kernel.UUID
}

func (WorkerAudience) isAudience() {}

// WorkersAudience targets workers of one station who are checked in today at
// the given outlet.
type WorkersAudience struct {
	OutletID kernel.UUID
	Station  order.Station
}

func (WorkersAudience) isAudience() {}

// DriversAudience targets drivers of the given outlet who are checked in today.
type DriversAudience struct {
	OutletID kernel.UUID
}

func (DriversAudience) isAudience() {}

// AdminsAudience targets all admins of the given outlet.
type AdminsAudience struct {
	OutletID kernel.UUID
}

func (AdminsAudience) isAudience() {}

// Notification is one message addressed to an audience. Recipient resolution
// happens at save time, inside the same transaction as the state change that
// produced the notification.
type Notification struct {
	id          kernel.UUID
	title       string
	description string
	audience    Audience
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates a notification for the given audience.
func NewNotification(id kernel.UUID, title, description string, audience Audience, createdAt time.Time) (*Notification, error) {
	n := &Notification{
		description: description,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setTitle(title),
		n.setAudience(audience),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// Title returns the short headline shown to the recipient.
func (n *Notification) Title() string { return n.title }

// Description returns the message body.
func (n *Notification) Description() string { return n.description }

// Audience returns who this notification targets.
func (n *Notification) Audience() Audience { return n.audience }

// CreatedAt returns when the notification was produced.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setAudience(audience Audience) error {
	if audience == nil {
		return errs.NewValueIsRequiredError("audience")
	}
	n.audience = audience
	return nil
}
