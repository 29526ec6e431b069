package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chaseplus/pkg/config"
	"chaseplus/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ContentExchange         = "content_events"
	OrphanedAssetQueueName  = "orphaned_assets"
	OrphanedAssetRoutingKey = "asset.orphaned"
)

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Topic exchange for course.*, blog.* and asset.* events
	err = channel.ExchangeDeclare(
		ContentExchange, // name
		"topic",         // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	// Orphaned assets are kept in a durable queue until an operator drains it
	_, err = channel.QueueDeclare(
		OrphanedAssetQueueName, // name
		true,                   // durable
		false,                  // delete when unused
		false,                  // exclusive
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		OrphanedAssetQueueName,  // queue name
		OrphanedAssetRoutingKey, // routing key
		ContentExchange,         // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Publish sends payload as a persistent JSON message to the content exchange.
func (c *Client) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	msg, err := newMessage(payload)
	if err != nil {
		return err
	}

	err = c.channel.PublishWithContext(
		ctx,
		ContentExchange, // exchange
		routingKey,      // routing key
		false,           // mandatory
		false,           // immediate
		msg,
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish message to exchange=%s, routing_key=%s: %v", ContentExchange, routingKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published to exchange=%s, routing_key=%s: %s", ContentExchange, routingKey, string(msg.Body))
	return nil
}

// QueueLength returns the number of orphaned-asset messages waiting.
func (c *Client) QueueLength() (int, error) {
	queue, err := c.channel.QueueDeclarePassive(OrphanedAssetQueueName, true, false, false, false, nil)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}

func newMessage(payload interface{}) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}, nil
}
