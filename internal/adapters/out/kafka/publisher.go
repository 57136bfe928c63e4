// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"freight/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

const (
	HeaderEventName   = "event-name"
	HeaderMessageID   = "message-id"
	HeaderOccurredAt  = "occurred-at"
	HeaderContentType = "content-type"
)

// Writer is the part of kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher keys every message by aggregate id so that the events of one
// aggregate land on one partition in order.
type Publisher struct {
	writer Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return NewPublisherWithWriter(&skafka.Writer{
		Addr:         skafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		RequiredAcks: skafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	})
}

func NewPublisherWithWriter(writer Writer) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]skafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, skafka.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []skafka.Header{
				{Key: HeaderEventName, Value: []byte(m.EventName)},
				{Key: HeaderMessageID, Value: []byte(m.ID.String())},
				{Key: HeaderOccurredAt, Value: []byte(m.OccurredAt.UTC().Format(time.RFC3339Nano))},
				{Key: HeaderContentType, Value: []byte("application/json")},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("write %d messages to kafka: %w", len(batch), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
