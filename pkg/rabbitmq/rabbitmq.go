package rabbitmq

import (
	"fmt"
	"sync"
	"time"

	amqp "github.com/streadway/amqp"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	mu       sync.Mutex // guards channel.Publish
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
	// Exchange is a durable topic exchange messages are published to.
	Exchange string
	// Queue is bound to Exchange for every routing key and is read by Consume.
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the exchange,
// the queue and the binding between them.
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

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(
		cfg.Exchange, // name
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	if _, err := ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", cfg.Queue, err)
	}

	if err := ch.QueueBind(cfg.Queue, "#", cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", cfg.Queue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
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
		return fmt.Errorf("errors while closing RabbitMQ client: %v", errs)
	}
	return nil
}

// Publish sends a persistent JSON message to the client's exchange.
func (c *Client) Publish(routingKey, messageID string, body []byte) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.channel.Publish(
		c.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    messageID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}
	return nil
}

// Consume delivers messages from the client's queue to handler in a background
// goroutine. A message is acked when handler returns nil and requeued otherwise.
// onError, when not nil, is told about handler and ack failures.
func (c *Client) Consume(handler func(msg amqp.Delivery) error, onError func(tag uint64, err error)) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		c.queue,
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

	go dispatch(msgs, handler, onError)

	return nil
}

// dispatch runs handler for every delivery until msgs is closed, acking
// successes and requeueing failures.
func dispatch(msgs <-chan amqp.Delivery, handler func(msg amqp.Delivery) error, onError func(tag uint64, err error)) {
	report := func(tag uint64, err error) {
		if onError != nil {
			onError(tag, err)
		}
	}

	for msg := range msgs {
		if err := handler(msg); err != nil {
			report(msg.DeliveryTag, err)
			if nackErr := msg.Nack(false, true); nackErr != nil {
				report(msg.DeliveryTag, fmt.Errorf("nack: %w", nackErr))
			}
			continue
		}
		if ackErr := msg.Ack(false); ackErr != nil {
			report(msg.DeliveryTag, fmt.Errorf("ack: %w", ackErr))
		}
	}
}
