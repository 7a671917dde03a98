package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"moodtunes/internal/model"
)

// DetectionPublisher pushes detection events onto the persistence queue so
// the request path never waits on MySQL.
type DetectionPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewDetectionPublisher(conn *amqp.Connection, queueName string) *DetectionPublisher {
	return &DetectionPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *DetectionPublisher) Publish(ctx context.Context, detection model.Detection) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(detection)
	if err != nil {
		return fmt.Errorf("marshal detection payload failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("publish detection failed: %w", err)
	}
	return nil
}
