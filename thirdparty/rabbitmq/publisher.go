package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/browbeat/event-marketplace/model"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// EventPublisher is what the application layer needs from the broker.
type EventPublisher interface {
	PublishEvent(ctx context.Context, eventType string, payload interface{}) error
	PublishCompletion(ctx context.Context, msg CompletionMessage) error
}

// CompletionMessage asks for an accepted event request to be marked
// completed once the event is over.
type CompletionMessage struct {
	EventRequestID uint64    `json:"event_request_id"`
	VendorID       uint64    `json:"vendor_id"`
	EndsAt         time.Time `json:"ends_at"`
}

type Publisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishEvent(ctx context.Context, eventType string, payload interface{}) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	body, err := json.Marshal(model.MarketplaceEvent{
		ID:         id.String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		EventsExchange, // exchange
		eventType,      // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    id.String(),
			Body:         body,
		},
	)
}

func (p *Publisher) PublishCompletion(ctx context.Context, msg CompletionMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	delayMs := time.Until(msg.EndsAt).Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		CompletionExchange,
		CompletionRoutingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": delayMs,
			},
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every message; used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(context.Context, string, interface{}) error { return nil }

func (NoopPublisher) PublishCompletion(context.Context, CompletionMessage) error { return nil }
