package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const mimeApplicationJSON = "application/json"

// confirmation is the broker confirm of one published message. It is satisfied
// by *amqp.DeferredConfirmation.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// publisher publishes a message and hands back the confirm tied to its delivery tag.
type publisher interface {
	Publish(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error)
}

type channelPublisher struct {
	ch *amqp.Channel
}

func (p channelPublisher) Publish(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error) {
	dc, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, "", key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return dc, nil
}

// RabbitMQDispatcher publishes automation events to a durable queue and waits
// for the broker confirm of each one.
type RabbitMQDispatcher struct {
	pub   publisher
	queue string
	log   *zap.Logger
}

var _ interfaces.IAutomationDispatcher = (*RabbitMQDispatcher)(nil)

// NewRabbitMQDispatcher opens a channel on conn, declares the durable queue and
// enables publisher confirms.
func NewRabbitMQDispatcher(conn *amqp.Connection, queue string, log *zap.Logger) (*RabbitMQDispatcher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &RabbitMQDispatcher{pub: channelPublisher{ch: ch}, queue: queue, log: log}, nil
}

func (d *RabbitMQDispatcher) Dispatch(ctx context.Context, event entities.AutomationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  mimeApplicationJSON,
		MessageId:    event.ID,
		Type:         string(event.Name),
		Timestamp:    event.OccurredAt,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	confirm, err := d.pub.Publish(ctx, d.queue, msg)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", d.queue, err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", d.queue, err)
	}
	if !acked {
		return fmt.Errorf("publish to %s: message not confirmed", d.queue)
	}

	d.log.Debug("[automation][rabbitmq] event published",
		zap.String("event", string(event.Name)),
		zap.String("event_id", event.ID),
		zap.String("queue", d.queue))
	return nil
}

// LogDispatcher only logs events. It stands in when no broker is configured.
type LogDispatcher struct {
	log *zap.Logger
}

var _ interfaces.IAutomationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(log *zap.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) Dispatch(_ context.Context, event entities.AutomationEvent) error {
	d.log.Info("[automation][log] event",
		zap.String("event", string(event.Name)),
		zap.String("inspection_id", event.InspectionID),
		zap.Strings("items", event.Items))
	return nil
}
