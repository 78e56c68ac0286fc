package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange     = "marketplace_events"
	NotificationsQueue = "marketplace_notifications"

	CompletionExchange   = "event_request_completion_exchange"
	CompletionQueue      = "event_request_completion_queue"
	CompletionRoutingKey = "event_request_completion"
)

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology is idempotent; publisher and consumer both run it so
// either can start first.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		EventsExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-delete
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return err
	}

	// delayed exchange, needs the rabbitmq_delayed_message_exchange plugin
	err = channel.ExchangeDeclare(
		CompletionExchange,
		"x-delayed-message",
		true,
		false,
		false,
		false,
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return err
	}

	if _, err := channel.QueueDeclare(NotificationsQueue, true, false, false, false, nil); err != nil {
		return err
	}
	if err := channel.QueueBind(NotificationsQueue, "#", EventsExchange, false, nil); err != nil {
		return err
	}

	if _, err := channel.QueueDeclare(CompletionQueue, true, false, false, false, nil); err != nil {
		return err
	}
	return channel.QueueBind(CompletionQueue, CompletionRoutingKey, CompletionExchange, false, nil)
}
