// Package kafka publishes audit events to a Kafka topic. One message per
// completed ledger operation, keyed by asset ID so per-asset ordering holds.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	portssvc "github.com/assetforge/fixed_asset_app/internal/core/ports/services"
)

const defaultTopic = "asset-audit"

// Publisher writes audit events to Kafka.
type Publisher struct {
	writer *kafka.Writer
}

var _ portssvc.AuditPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher against the given brokers. Topic falls back
// to "asset-audit" when empty.
func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = defaultTopic
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 5 * time.Second,
		},
	}
}

// Publish marshals the event and writes one message keyed by asset ID.
func (p *Publisher) Publish(ctx context.Context, event portssvc.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AssetID),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

var _ portssvc.AuditPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, portssvc.AuditEvent) error { return nil }
