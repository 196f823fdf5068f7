package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/streadway/amqp"

	"inventory/pkg/logger"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the
// inventory queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareInventoryQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info().Str("queue", InventoryQueue).Msg("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

func declareInventoryQueue(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		InventoryQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return amqp.Queue{}, fmt.Errorf("failed to declare %s: %w", InventoryQueue, err)
	}
	return q, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishInventoryEvent publishes event as persistent JSON to the inventory
// queue.
func (c *Client) PublishInventoryEvent(ctx context.Context, event InventoryEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory event: %w", err)
	}

	err = c.channel.Publish(
		"",             // default exchange
		InventoryQueue, // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         string(event.Type),
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug().Str("event_id", event.ID).Str("type", string(event.Type)).Msg("inventory event sent")
	return nil
}

// ConsumeInventoryEvents starts a goroutine that hands each decoded event to
// handler. Messages are acked when handler returns nil; undecodable messages
// are dropped and failed ones requeued.
func (c *Client) ConsumeInventoryEvents(handler func(InventoryEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareInventoryQueue(c.channel)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue.Name,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	logger.Info().Str("queue", queue.Name).Msg("waiting for inventory events")

	go func() {
		for msg := range msgs {
			handleDelivery(msg, handler)
		}
	}()

	return nil
}

// acknowledger is the part of amqp.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func handleDelivery(msg amqp.Delivery, handler func(InventoryEvent) error) {
	settle(&msg, msg.DeliveryTag, msg.Body, handler)
}

func settle(ack acknowledger, tag uint64, body []byte, handler func(InventoryEvent) error) {
	event, err := DecodeInventoryEvent(body)
	if err != nil {
		logger.Warn().Err(err).Uint64("delivery_tag", tag).Msg("dropping malformed inventory event")
		if nackErr := ack.Nack(false, false); nackErr != nil {
			logger.Error().Err(nackErr).Uint64("delivery_tag", tag).Msg("failed to nack message")
		}
		return
	}

	if err := handler(event); err != nil {
		logger.Error().Err(err).Uint64("delivery_tag", tag).Msg("failed to process inventory event")
		if nackErr := ack.Nack(false, true); nackErr != nil {
			logger.Error().Err(nackErr).Uint64("delivery_tag", tag).Msg("failed to nack message")
		}
		return
	}
	if ackErr := ack.Ack(false); ackErr != nil {
		logger.Error().Err(ackErr).Uint64("delivery_tag", tag).Msg("failed to ack message")
	}
}
