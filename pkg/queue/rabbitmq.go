package queue

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/golangid/questionario-service/pkg/helper"
	"github.com/golangid/questionario-service/pkg/logger"
)

// RabbitMQOptionFunc func type
type RabbitMQOptionFunc func(*RabbitMQQueue)

// RabbitMQSetBrokerHost set custom broker host
func RabbitMQSetBrokerHost(brokerHost string) RabbitMQOptionFunc {
	return func(q *RabbitMQQueue) {
		q.brokerHost = brokerHost
	}
}

// RabbitMQSetExchange set custom exchange and dead letter exchange name
func RabbitMQSetExchange(exchangeName, dlxName string) RabbitMQOptionFunc {
	return func(q *RabbitMQQueue) {
		q.exchangeName = exchangeName
		q.dlxName = dlxName
	}
}

// RabbitMQSetDeadLetterSuffix set custom dead letter queue suffix
func RabbitMQSetDeadLetterSuffix(suffix string) RabbitMQOptionFunc {
	return func(q *RabbitMQQueue) {
		q.dlqSuffix = suffix
	}
}

// RabbitMQSetMaxRetry set delivery retry budget before dead letter routing
func RabbitMQSetMaxRetry(maxRetry int) RabbitMQOptionFunc {
	return func(q *RabbitMQQueue) {
		q.maxRetry = maxRetry
	}
}

// RabbitMQSetReconnect set bounded reconnect attempts and delay between attempts
func RabbitMQSetReconnect(attempts int, delay time.Duration) RabbitMQOptionFunc {
	return func(q *RabbitMQQueue) {
		q.reconnectAttempts = attempts
		q.reconnectDelay = delay
	}
}

// RabbitMQSetVisibilityTimeout set how long a received message stays invisible
// before an unacknowledged delivery is released back to the queue
func RabbitMQSetVisibilityTimeout(timeout time.Duration) RabbitMQOptionFunc {
	return func(q *RabbitMQQueue) {
		q.visibilityTimeout = timeout
	}
}

/*
RabbitMQQueue message queue on a broker hosted direct exchange, one routing
key per destination. The dead letter sibling queue is bound to a separate
direct exchange and wired from the primary queue via the x-dead-letter
queue arguments, so expired retry budgets route there.

Connection and channel are owned by this struct and guarded by a mutex,
every operation checks liveness first and runs a bounded reconnect plus
redeclare sequence when the connection was lost.
*/
type RabbitMQQueue struct {
	mu sync.Mutex

	brokerHost        string
	exchangeName      string
	dlxName           string
	dlqSuffix         string
	maxRetry          int
	reconnectAttempts int
	reconnectDelay    time.Duration
	visibilityTimeout time.Duration

	conn     *amqp.Connection
	ch       *amqp.Channel
	chClosed chan *amqp.Error
	declared map[string]bool

	// process local delivery bookkeeping, attempts keyed by message id,
	// pending holds the release deadline per handed out delivery tag
	attempts map[string]int
	pending  map[string]map[uint64]time.Time
}

// NewRabbitMQQueue setup rabbitmq message queue, panic when the broker is unreachable at boot
func NewRabbitMQQueue(opts ...RabbitMQOptionFunc) *RabbitMQQueue {
	deferFunc := logger.LogWithDefer("Load RabbitMQ queue configuration... ")
	defer deferFunc()

	q := &RabbitMQQueue{
		dlqSuffix:         "-deadletter",
		maxRetry:          5,
		reconnectAttempts: 3,
		reconnectDelay:    3 * time.Second,
		visibilityTimeout: 5 * time.Minute,
		declared:          make(map[string]bool),
		attempts:          make(map[string]int),
		pending:           make(map[string]map[uint64]time.Time),
	}
	for _, opt := range opts {
		opt(q)
	}

	if err := q.connect(); err != nil {
		panic("RabbitMQ: cannot connect to server broker: " + err.Error())
	}

	return q
}

// DeadLetterName method
func (q *RabbitMQQueue) DeadLetterName(queueName string) string {
	return queueName + q.dlqSuffix
}

// Send method
func (q *RabbitMQQueue) Send(ctx context.Context, queueName string, body []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	ch, err := q.liveChannel()
	if err != nil {
		return err
	}
	if err := q.ensureQueue(ch, queueName); err != nil {
		return err
	}

	return ch.Publish(
		q.exchangeName,
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			ContentType:  helper.HeaderMIMEApplicationJSON,
			MessageId:    uuid.NewString(),
			Body:         body,
		})
}

// ReceiveBatch pull up to maxMessages from the destination. Deliveries from
// previous batches that were never deleted are released back to the queue
// once their visibility deadline passes, handlers still inside the window
// keep exclusive ownership of their delivery tag. Messages beyond the retry
// budget are republished to the dead letter sibling instead of being handed
// to the caller.
func (q *RabbitMQQueue) ReceiveBatch(ctx context.Context, queueName string, maxMessages int) (messages []ReceivedMessage, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch, err := q.liveChannel()
	if err != nil {
		return nil, err
	}
	if err := q.ensureQueue(ch, queueName); err != nil {
		return nil, err
	}

	now := time.Now()
	if q.pending[queueName] == nil {
		q.pending[queueName] = make(map[uint64]time.Time)
	}
	for tag, deadline := range q.pending[queueName] {
		if now.Before(deadline) {
			continue
		}
		if err := ch.Nack(tag, false, true); err != nil {
			logger.LogEf("rabbitmq_queue: release pending delivery %d: %v", tag, err)
		}
		delete(q.pending[queueName], tag)
	}

	for len(messages) < maxMessages {
		delivery, ok, err := ch.Get(queueName, false)
		if err != nil {
			return messages, err
		}
		if !ok {
			break
		}

		messageID := delivery.MessageId
		if messageID == "" {
			messageID = strconv.FormatUint(delivery.DeliveryTag, 10)
		}
		q.attempts[messageID]++
		attempt := q.attempts[messageID]

		// the retry budget only applies to primary destinations, a message
		// already on a dead letter queue has nowhere further to route
		if attempt > q.maxRetry && !strings.HasSuffix(queueName, q.dlqSuffix) {
			dlqName := q.DeadLetterName(queueName)
			if err := ch.Publish(q.dlxName, dlqName, false, false, amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now(),
				ContentType:  delivery.ContentType,
				MessageId:    delivery.MessageId,
				Body:         delivery.Body,
			}); err != nil {
				return messages, err
			}
			if err := ch.Ack(delivery.DeliveryTag, false); err != nil {
				return messages, err
			}
			delete(q.attempts, messageID)
			logger.LogIf("rabbitmq_queue: message %s exceeded retry budget, routed to %s", messageID, dlqName)
			continue
		}

		q.pending[queueName][delivery.DeliveryTag] = now.Add(q.visibilityTimeout)
		messages = append(messages, ReceivedMessage{
			ID:       messageID,
			Body:     delivery.Body,
			Receipt:  strconv.FormatUint(delivery.DeliveryTag, 10),
			Attempts: attempt,
		})
	}

	return messages, nil
}

// Delete acknowledge one received message
func (q *RabbitMQQueue) Delete(ctx context.Context, queueName string, msg ReceivedMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	ch, err := q.liveChannel()
	if err != nil {
		return err
	}

	tag, err := strconv.ParseUint(msg.Receipt, 10, 64)
	if err != nil {
		return fmt.Errorf("rabbitmq_queue: invalid receipt %q: %v", msg.Receipt, err)
	}

	// a receipt past its visibility deadline was already released back to the
	// queue, acking the stale tag would raise a channel exception
	if _, ok := q.pending[queueName][tag]; !ok {
		return fmt.Errorf("rabbitmq_queue: receipt %q expired, message released back to %s", msg.Receipt, queueName)
	}

	if err := ch.Ack(tag, false); err != nil {
		return err
	}
	delete(q.pending[queueName], tag)
	delete(q.attempts, msg.ID)
	return nil
}

// Metrics fetch destination existence and approximate depth via passive declare
func (q *RabbitMQQueue) Metrics(ctx context.Context, queueName string) (Metrics, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	metric := Metrics{QueueName: queueName}

	if err := ctx.Err(); err != nil {
		return metric, err
	}

	if _, err := q.liveChannel(); err != nil {
		return metric, err
	}

	// passive declare closes the channel on a missing queue, use a throwaway one
	tmpCh, err := q.conn.Channel()
	if err != nil {
		return metric, err
	}

	queue, err := tmpCh.QueueDeclarePassive(queueName, true, false, false, false, nil)
	if err != nil {
		return metric, nil
	}
	defer tmpCh.Close()

	metric.Exists = true
	metric.ApproximateMessageCount = queue.Messages
	return metric, nil
}

// Disconnect method
func (q *RabbitMQQueue) Disconnect(ctx context.Context) error {
	deferFunc := logger.LogWithDefer("rabbitmq queue: disconnect...")
	defer deferFunc()

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.conn == nil {
		return nil
	}
	return q.conn.Close()
}

// liveChannel must be called under lock, reconnect and redeclare when the
// connection or the channel was lost
func (q *RabbitMQQueue) liveChannel() (*amqp.Channel, error) {
	if q.conn != nil && !q.conn.IsClosed() && q.ch != nil && q.channelAlive() {
		return q.ch, nil
	}

	logger.LogI("rabbitmq_queue: connection lost, reconnecting to " + helper.MaskingPasswordURL(q.brokerHost))

	var lastErr error
	for attempt := 0; attempt < q.reconnectAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(q.reconnectDelay)
		}
		if lastErr = q.connect(); lastErr == nil {
			return q.ch, nil
		}
	}
	return nil, fmt.Errorf("rabbitmq_queue: reconnect failed after %d attempts: %v", q.reconnectAttempts, lastErr)
}

// channelAlive report whether the broker closed the channel on an exception,
// an ack of an unknown tag or a declare conflict kills the channel while the
// connection stays open
func (q *RabbitMQQueue) channelAlive() bool {
	select {
	case <-q.chClosed:
		return false
	default:
		return true
	}
}

func (q *RabbitMQQueue) connect() error {
	if q.conn != nil && !q.conn.IsClosed() {
		q.conn.Close()
	}

	conn, err := amqp.Dial(q.brokerHost)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	if err := ch.ExchangeDeclare(q.exchangeName, "direct", true, false, false, false, nil); err != nil {
		conn.Close()
		return err
	}
	if err := ch.ExchangeDeclare(q.dlxName, "direct", true, false, false, false, nil); err != nil {
		conn.Close()
		return err
	}

	q.conn, q.ch = conn, ch
	q.chClosed = ch.NotifyClose(make(chan *amqp.Error, 1))
	// topology must be redeclared on the fresh channel, delivery tags from
	// the old channel are void
	q.declared = make(map[string]bool)
	q.pending = make(map[string]map[uint64]time.Time)
	return nil
}

// ensureQueue lazy topology provisioning, declare destination and its dead letter sibling
func (q *RabbitMQQueue) ensureQueue(ch *amqp.Channel, queueName string) error {
	if q.declared[queueName] {
		return nil
	}

	// a dead letter destination is declared plain, redeclaring it with
	// dead letter arguments would conflict with the existing topology
	if strings.HasSuffix(queueName, q.dlqSuffix) {
		if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
			return fmt.Errorf("error in declaring the dead letter queue %s", err)
		}
		if err := ch.QueueBind(queueName, queueName, q.dlxName, false, nil); err != nil {
			return fmt.Errorf("dead letter queue bind error: %s", err)
		}
		q.declared[queueName] = true
		return nil
	}

	dlqName := q.DeadLetterName(queueName)

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    q.dlxName,
		"x-dead-letter-routing-key": dlqName,
	}); err != nil {
		return fmt.Errorf("error in declaring the queue %s", err)
	}
	if err := ch.QueueBind(queueName, queueName, q.exchangeName, false, nil); err != nil {
		return fmt.Errorf("queue bind error: %s", err)
	}

	if _, err := ch.QueueDeclare(dlqName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("error in declaring the dead letter queue %s", err)
	}
	if err := ch.QueueBind(dlqName, dlqName, q.dlxName, false, nil); err != nil {
		return fmt.Errorf("dead letter queue bind error: %s", err)
	}

	q.declared[queueName] = true
	return nil
}
