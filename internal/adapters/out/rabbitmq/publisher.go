// Package rabbitmq publishes outbox messages to a durable RabbitMQ queue
// through the default exchange.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const appID = "freight"

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn    *amqp.Connection
	channel Channel
	queue   string
}

// Dial connects, opens a channel and declares the queue.
func Dial(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &Publisher{conn: conn, channel: ch, queue: queue}, nil
}

// NewPublisherWithChannel publishes through an already prepared channel. The
// caller keeps ownership of the connection.
func NewPublisherWithChannel(channel Channel, queue string) *Publisher {
	return &Publisher{channel: channel, queue: queue}
}

// Publish sends the messages one by one and stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	for _, m := range messages {
		err := p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    m.ID.String(),
			Type:         m.EventName,
			Timestamp:    m.OccurredAt,
			AppId:        appID,
			Headers:      amqp.Table{"aggregate_id": m.AggregateID.String()},
			Body:         m.Payload,
		})
		if err != nil {
			return fmt.Errorf("publish %s %s: %w", m.EventName, m.ID, err)
		}
	}
	return nil
}

func (p *Publisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
