// Package kafka publishes order-saved events to Kafka. With no brokers
// configured the publisher is a no-op, so the service runs without a broker.
package kafka

import (
	"strings"

	kafkago "github.com/segmentio/kafka-go"
)

// DefaultOrderSavedTopic is used when no topic is configured.
const DefaultOrderSavedTopic = "order.saved"

// Client holds the broker list.
type Client struct {
	Brokers []string
}

// NewClient parses a comma-separated broker list. Blank entries are skipped.
func NewClient(brokersCSV string) *Client {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &Client{Brokers: brokers}
}

// Enabled reports whether any broker is configured.
func (c *Client) Enabled() bool {
	return len(c.Brokers) > 0
}

// NewWriter creates a writer for topic. Messages with the same key land on the
// same partition.
func (c *Client) NewWriter(topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(c.Brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
