// Package kafka provides the broker-facing side of the event relay.
// Events drained from the transactional outbox are published to a single
// topic, keyed by aggregate so consumers see each aggregate's events in
// log order.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"marketplace/internal/core/domain/model/event"
)

// envelope is the wire format of a published event.
type envelope struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Publisher delivers event log entries to a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given topic. Brokers are given
// as a comma separated list; an empty list yields a disabled publisher
// whose Enabled method reports false.
func NewPublisher(brokersCSV, topic string) *Publisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	if len(brokers) == 0 {
		return &Publisher{}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Enabled reports whether a broker is configured.
func (p *Publisher) Enabled() bool {
	return p.writer != nil
}

// Publish delivers one event. The message key is the aggregate grouping
// key, so the hash balancer keeps each aggregate's events on one partition.
func (p *Publisher) Publish(ctx context.Context, aggregate *event.Event) error {
	if p.writer == nil {
		return nil
	}

	data, err := json.Marshal(envelope{
		ID:         aggregate.ID(),
		Name:       aggregate.Name(),
		Payload:    aggregate.Payload(),
		OccurredAt: aggregate.OccurredAt(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(aggregate.Key()),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
