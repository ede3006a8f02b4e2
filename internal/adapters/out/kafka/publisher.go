package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"orderdesk/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type orderSavedMessage struct {
	OrderID     int64     `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	NumProducts int       `json:"numProducts"`
	FinalPrice  string    `json:"finalPrice"`
	Created     bool      `json:"created"`
	SavedAt     time.Time `json:"savedAt"`
}

// OrderSavedPublisher writes one JSON message per saved order, keyed by order id.
type OrderSavedPublisher struct {
	writer MessageWriter
}

// NewOrderSavedPublisher wraps writer.
func NewOrderSavedPublisher(writer MessageWriter) *OrderSavedPublisher {
	return &OrderSavedPublisher{writer: writer}
}

// NewPublisher returns a Kafka publisher for topic, or a no-op publisher when
// the client has no brokers.
func NewPublisher(client *Client, topic string) ports.EventPublisher {
	if client == nil || !client.Enabled() {
		return NoopPublisher{}
	}
	if topic == "" {
		topic = DefaultOrderSavedTopic
	}
	return NewOrderSavedPublisher(client.NewWriter(topic))
}

// PublishOrderSaved implements ports.EventPublisher.
func (p *OrderSavedPublisher) PublishOrderSaved(ctx context.Context, event ports.OrderSaved) error {
	data, err := json.Marshal(orderSavedMessage{
		OrderID:     int64(event.OrderID),
		OrderNumber: event.OrderNumber,
		Status:      event.Status,
		NumProducts: event.ItemCount,
		FinalPrice:  event.FinalPrice,
		Created:     event.Created,
		SavedAt:     event.SavedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode order saved event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(strconv.FormatInt(int64(event.OrderID), 10)),
		Value: data,
		Time:  time.Now().UTC(),
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order saved event: %w", err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *OrderSavedPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

// PublishOrderSaved implements ports.EventPublisher.
func (NoopPublisher) PublishOrderSaved(context.Context, ports.OrderSaved) error {
	return nil
}
