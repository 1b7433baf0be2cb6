package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const EventOrderPlaced = "order.placed"

// Publisher announces placed orders to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, ord Order) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, ord Order) error { return nil }

// OrderMessage is the queue payload for EventOrderPlaced.
type OrderMessage struct {
	Event string `json:"event"`
	Order Order  `json:"order"`
}

// AMQPPublisher publishes order events to a durable RabbitMQ queue through the
// default exchange.
type AMQPPublisher struct {
	ch    *amqp.Channel
	queue string
}

// NewAMQPPublisher declares queue on ch and returns a publisher for it.
func NewAMQPPublisher(ch *amqp.Channel, queue string) (*AMQPPublisher, error) {
	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &AMQPPublisher{ch: ch, queue: q.Name}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, ord Order) error {
	body, err := encodeOrderMessage(ord)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ord.ID,
		Type:         EventOrderPlaced,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

func encodeOrderMessage(ord Order) ([]byte, error) {
	body, err := json.Marshal(OrderMessage{Event: EventOrderPlaced, Order: ord})
	if err != nil {
		return nil, fmt.Errorf("marshal order message: %w", err)
	}
	return body, nil
}
