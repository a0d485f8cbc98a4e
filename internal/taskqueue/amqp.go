// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package taskqueue declares the "tasks" work queue and publishes
// ExtractionTask messages to it over AMQP 0-9-1. Structurally grounded on
// internal/queue/redis_queue.go (connect-and-verify-on-construct, a thin
// single-purpose adapter, structured log lines per operation); the spec's
// vocabulary (broker, channel, exchange, routing key) is RabbitMQ's, so the
// wire implementation uses amqp091-go rather than Redis lists.
package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/apperror"
	"github.com/doculens/doculens/internal/model"
)

const queueName = "tasks"

// Queue publishes extraction tasks to the broker's "tasks" queue.
type Queue struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  hclog.Logger
}

// New dials the broker, opens one channel, and declares the queue
// (durable, non-exclusive, non-auto-delete, idempotent).
func New(url string, logger hclog.Logger) (*Queue, error) {
	logger = logger.Named("taskqueue")

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queueName, err)
	}

	logger.Info("declared queue", "queue", queueName)
	return &Queue{conn: conn, channel: channel, logger: logger}, nil
}

// Close releases the channel and connection.
func (q *Queue) Close() {
	q.channel.Close()
	q.conn.Close()
}

// Publish serializes task as JSON and publishes it to the default exchange
// with the queue name as routing key, persistent delivery mode.
func (q *Queue) Publish(ctx context.Context, task model.ExtractionTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return apperror.NewInternal(err, "failed to marshal extraction task")
	}

	err = q.channel.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         payload,
	})
	if err != nil {
		q.logger.Error("failed to publish task", "document_id", task.DocumentID, "error", err)
		return apperror.NewUpstreamUnavailable(err, "failed to queue extraction task")
	}

	q.logger.Info("published extraction task", "namespace", task.Namespace, "document_id", task.DocumentID)
	return nil
}

// Purge removes all messages from the queue. Test-only, per spec.md §4.3.
func (q *Queue) Purge(ctx context.Context) error {
	_, err := q.channel.QueuePurge(queueName, false)
	if err != nil {
		return apperror.NewInternal(err, "failed to purge queue")
	}
	return nil
}
