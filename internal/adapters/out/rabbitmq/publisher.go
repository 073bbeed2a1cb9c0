// Package rabbitmq pushes notifications to the delivery channels (mobile
// push, SMS gateways) over AMQP. Publishing is best effort: the database
// rows written in the producing transaction are the source of truth, so a
// broker failure is logged by the caller and never fails a command.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeName = "laundry.notifications"

// envelope is the wire format of one published notification. Audience is a
// discriminated union resolved by the consumer.
type envelope struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Audience    audience  `json:"audience"`
	CreatedAt   time.Time `json:"created_at"`
}

type audience struct {
	Kind     string `json:"kind"`
	UserID   string `json:"user_id,omitempty"`
	OutletID string `json:"outlet_id,omitempty"`
	Station  string `json:"station,omitempty"`
}

// Publisher implements the notification publisher port on a RabbitMQ fanout
// exchange.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher declares the notifications exchange and returns a publisher
// bound to it.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if err = ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &Publisher{ch: ch}, nil
}

// Publish sends one notification to the exchange as a persistent message.
func (p *Publisher) Publish(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(toEnvelope(aggregate))
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
}

// Close releases the AMQP channel.
func (p *Publisher) Close() error {
	return p.ch.Close()
}

func toEnvelope(aggregate *notification.Notification) envelope {
	return envelope{
		ID:          aggregate.ID().String(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Audience:    toAudience(aggregate.Audience()),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toAudience(a notification.Audience) audience {
	switch v := a.(type) {
	case notification.CustomerAudience:
		return audience{Kind: "customer", UserID: v.CustomerID.String()}
	case notification.WorkerAudience:
		return audience{Kind: "worker", UserID: v.WorkerID.String()}
	case notification.WorkersAudience:
		return audience{Kind: "workers", OutletID: v.OutletID.String(), Station: v.Station.String()}
	case notification.DriversAudience:
		return audience{Kind: "drivers", OutletID: v.OutletID.String()}
	case notification.AdminsAudience:
		return audience{Kind: "admins", OutletID: v.OutletID.String()}
	default:
		return audience{Kind: fmt.Sprintf("%T", a)}
	}
}
