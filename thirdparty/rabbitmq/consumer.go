package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
	"github.com/browbeat/event-marketplace/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		apiURL:  apiURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Start consumes both queues until ctx is cancelled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	// one unacked message per consumer at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	completions, err := c.channel.Consume(
		CompletionQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	notifications, err := c.channel.Consume(NotificationsQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go c.loop(ctx, completions, c.handleCompletion)
	go c.loop(ctx, notifications, c.handleNotification)

	return nil
}

func (c *Consumer) loop(ctx context.Context, msgs <-chan amqp091.Delivery, handle func(amqp091.Delivery)) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			handle(msg)
		}
	}
}

func (c *Consumer) handleCompletion(msg amqp091.Delivery) {
	var completion CompletionMessage
	if err := json.Unmarshal(msg.Body, &completion); err != nil {
		logger.Error("[Consumer] unmarshal completion", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.callCompleteAPI(completion.EventRequestID); err != nil {
		logger.Error("[Consumer] complete event request",
			zap.Uint64("event_request_id", completion.EventRequestID),
			zap.String("error", err.Error()))
		// requeue for another attempt
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("event request completion processed", zap.Uint64("event_request_id", completion.EventRequestID))
}

// handleNotification turns domain events into vendor/client notifications.
// Delivery is a structured log line; a mail or push sender would hang off here.
func (c *Consumer) handleNotification(msg amqp091.Delivery) {
	var evt struct {
		model.MarketplaceEvent
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(msg.Body, &evt); err != nil {
		logger.Error("[Consumer] unmarshal event", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	fields := []zap.Field{
		zap.String("event_id", evt.ID),
		zap.String("type", evt.Type),
		zap.Time("occurred_at", evt.OccurredAt),
	}

	switch evt.Type {
	case constant.EventRequestCreated:
		var req model.EventRequest
		if err := json.Unmarshal(evt.Payload, &req); err == nil {
			fields = append(fields, zap.Uint64("notify_vendor_id", req.VendorID), zap.String("event_type", req.EventType), zap.String("event_date", req.EventDate))
		}
	case constant.EventRequestStatusChanged:
		var change model.RequestStatusChange
		if err := json.Unmarshal(evt.Payload, &change); err == nil && change.Request != nil {
			fields = append(fields, zap.Uint64("notify_user_id", change.Request.UserID), zap.String("from", change.PreviousStatus), zap.String("to", string(change.Request.Status)))
		}
	case constant.EventReviewCreated:
		var review model.Review
		if err := json.Unmarshal(evt.Payload, &review); err == nil {
			fields = append(fields, zap.Uint64("notify_vendor_id", review.VendorID), zap.Int("rating", review.Rating))
		}
	}

	logger.Info("notification", fields...)
	_ = msg.Ack(false)
}

func (c *Consumer) callCompleteAPI(eventRequestID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/event-requests/%d/complete", c.apiURL, eventRequestID)

	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "event-request-completion-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx means the request is gone or not completable; retrying won't help
	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
