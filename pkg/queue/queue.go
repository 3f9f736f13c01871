package queue

import (
	"context"
)

// Backend selector for concrete message queue implementation
type Backend string

const (
	// RabbitMQBackend broker hosted exchange model
	RabbitMQBackend Backend = "rabbitmq"
	// RedisBackend polling queue model on redis lists
	RedisBackend Backend = "redis"
)

// ReceivedMessage one in flight message pulled from a destination.
// Receipt is the backend specific acknowledge handle and must be passed
// back to Delete untouched.
type ReceivedMessage struct {
	ID       string
	Body     []byte
	Receipt  string
	Attempts int
}

// Metrics destination metrics snapshot
type Metrics struct {
	QueueName               string `json:"destinationName"`
	Exists                  bool   `json:"exists"`
	ApproximateMessageCount int    `json:"approximateMessageCount"`
}

/*
MessageQueue capability contract for durable typed messages to a named
destination with a dead letter sibling.

Guarantees expected from every implementation:
  - at least once delivery, a message not deleted inside the visibility
    window becomes deliverable again
  - best effort FIFO within one destination
  - lazy topology provisioning, sending to an unknown destination creates
    it together with its dead letter sibling
  - delivery attempts beyond the retry budget route the message to the
    dead letter destination
*/
type MessageQueue interface {
	Send(ctx context.Context, queueName string, body []byte) error
	ReceiveBatch(ctx context.Context, queueName string, maxMessages int) ([]ReceivedMessage, error)
	Delete(ctx context.Context, queueName string, msg ReceivedMessage) error
	Metrics(ctx context.Context, queueName string) (Metrics, error)

	// DeadLetterName derive the dead letter sibling destination name
	DeadLetterName(queueName string) string

	Disconnect(ctx context.Context) error
}
