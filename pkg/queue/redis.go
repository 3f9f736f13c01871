package queue

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"

	"github.com/golangid/questionario-service/pkg/logger"
)

// RedisOptionFunc func type
type RedisOptionFunc func(*RedisQueue)

// RedisSetPool set custom connection pool
func RedisSetPool(pool *redis.Pool) RedisOptionFunc {
	return func(q *RedisQueue) {
		q.pool = pool
	}
}

// RedisSetDeadLetterSuffix set custom dead letter queue suffix
func RedisSetDeadLetterSuffix(suffix string) RedisOptionFunc {
	return func(q *RedisQueue) {
		q.dlqSuffix = suffix
	}
}

// RedisSetMaxRetry set delivery retry budget before dead letter routing
func RedisSetMaxRetry(maxRetry int) RedisOptionFunc {
	return func(q *RedisQueue) {
		q.maxRetry = maxRetry
	}
}

// RedisSetVisibilityTimeout set in flight lock window before redelivery
func RedisSetVisibilityTimeout(timeout time.Duration) RedisOptionFunc {
	return func(q *RedisQueue) {
		q.visibilityTimeout = timeout
	}
}

// redisEnvelope wire frame stored in the pending list and in flight hash
type redisEnvelope struct {
	ID       string `json:"id"`
	Attempts int    `json:"attempts"`
	Body     []byte `json:"body"`
}

/*
RedisQueue polling queue model on redis lists: producers LPUSH into the
pending list, consumers RPOP into an in flight hash with a visibility
deadline kept in a sorted set. Expired in flight entries are reclaimed on
the next receive, entries beyond the retry budget are moved to the dead
letter pending list. Destinations are provisioned lazily, pushing to an
unknown list creates it.
*/
type RedisQueue struct {
	pool              *redis.Pool
	dlqSuffix         string
	maxRetry          int
	visibilityTimeout time.Duration
}

// NewRedisQueue setup redis message queue, panic when redis is unreachable at boot
func NewRedisQueue(opts ...RedisOptionFunc) *RedisQueue {
	deferFunc := logger.LogWithDefer("Load Redis queue configuration... ")
	defer deferFunc()

	q := &RedisQueue{
		dlqSuffix:         "-deadletter",
		maxRetry:          5,
		visibilityTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(q)
	}

	if q.pool == nil {
		panic("Redis queue: missing connection pool")
	}

	ping := q.pool.Get()
	defer ping.Close()
	if _, err := ping.Do("PING"); err != nil {
		panic("Redis queue: cannot connect: " + err.Error())
	}

	return q
}

// DeadLetterName method
func (q *RedisQueue) DeadLetterName(queueName string) string {
	return queueName + q.dlqSuffix
}

// Send method
func (q *RedisQueue) Send(ctx context.Context, queueName string, body []byte) error {
	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	payload, err := json.Marshal(redisEnvelope{ID: uuid.NewString(), Body: body})
	if err != nil {
		return err
	}

	_, err = conn.Do("LPUSH", pendingKey(queueName), payload)
	return err
}

// ReceiveBatch reclaim expired in flight entries, then pull up to maxMessages
func (q *RedisQueue) ReceiveBatch(ctx context.Context, queueName string, maxMessages int) (messages []ReceivedMessage, err error) {
	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	now := time.Now()
	if err := q.reclaimExpired(conn, queueName, now); err != nil {
		return nil, err
	}

	for len(messages) < maxMessages {
		if err := ctx.Err(); err != nil {
			return messages, err
		}

		payload, err := redis.Bytes(conn.Do("RPOP", pendingKey(queueName)))
		if err == redis.ErrNil {
			break
		}
		if err != nil {
			return messages, err
		}

		var envelope redisEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			logger.LogEf("redis_queue: drop undecodable envelope on %s: %v", queueName, err)
			continue
		}

		envelope.Attempts++
		// the retry budget only applies to primary destinations, a message
		// already on a dead letter queue has nowhere further to route
		if envelope.Attempts > q.maxRetry && !strings.HasSuffix(queueName, q.dlqSuffix) {
			if err := q.pushEnvelope(conn, q.DeadLetterName(queueName), envelope); err != nil {
				return messages, err
			}
			logger.LogIf("redis_queue: message %s exceeded retry budget, routed to %s", envelope.ID, q.DeadLetterName(queueName))
			continue
		}

		inflightPayload, err := json.Marshal(envelope)
		if err != nil {
			return messages, err
		}
		deadline := now.Add(q.visibilityTimeout).UnixNano()
		if _, err := conn.Do("HSET", inflightKey(queueName), envelope.ID, inflightPayload); err != nil {
			return messages, err
		}
		if _, err := conn.Do("ZADD", deadlineKey(queueName), deadline, envelope.ID); err != nil {
			return messages, err
		}

		messages = append(messages, ReceivedMessage{
			ID:       envelope.ID,
			Body:     envelope.Body,
			Receipt:  envelope.ID,
			Attempts: envelope.Attempts,
		})
	}

	return messages, nil
}

// Delete remove one in flight entry, the message will not be redelivered
func (q *RedisQueue) Delete(ctx context.Context, queueName string, msg ReceivedMessage) error {
	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Do("ZREM", deadlineKey(queueName), msg.Receipt); err != nil {
		return err
	}
	_, err = conn.Do("HDEL", inflightKey(queueName), msg.Receipt)
	return err
}

// Metrics fetch destination existence and approximate pending depth
func (q *RedisQueue) Metrics(ctx context.Context, queueName string) (Metrics, error) {
	metric := Metrics{QueueName: queueName}

	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return metric, err
	}
	defer conn.Close()

	exists, err := redis.Bool(conn.Do("EXISTS", pendingKey(queueName)))
	if err != nil {
		return metric, err
	}
	if !exists {
		return metric, nil
	}

	count, err := redis.Int(conn.Do("LLEN", pendingKey(queueName)))
	if err != nil {
		return metric, err
	}

	metric.Exists = true
	metric.ApproximateMessageCount = count
	return metric, nil
}

// Disconnect method
func (q *RedisQueue) Disconnect(ctx context.Context) error {
	deferFunc := logger.LogWithDefer("redis queue: disconnect...")
	defer deferFunc()

	return q.pool.Close()
}

// reclaimExpired release in flight entries whose visibility deadline passed,
// back to pending or to the dead letter sibling when the retry budget is gone
func (q *RedisQueue) reclaimExpired(conn redis.Conn, queueName string, now time.Time) error {
	expired, err := redis.Strings(conn.Do("ZRANGEBYSCORE", deadlineKey(queueName), "-inf", now.UnixNano()))
	if err != nil {
		return err
	}

	for _, id := range expired {
		payload, err := redis.Bytes(conn.Do("HGET", inflightKey(queueName), id))
		if err == redis.ErrNil {
			conn.Do("ZREM", deadlineKey(queueName), id)
			continue
		}
		if err != nil {
			return err
		}

		var envelope redisEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			logger.LogEf("redis_queue: drop undecodable in flight envelope %s: %v", id, err)
			envelope = redisEnvelope{}
		}

		if envelope.ID != "" {
			if envelope.Attempts >= q.maxRetry && !strings.HasSuffix(queueName, q.dlqSuffix) {
				if err := q.pushEnvelope(conn, q.DeadLetterName(queueName), envelope); err != nil {
					return err
				}
				logger.LogIf("redis_queue: message %s exceeded retry budget, routed to %s", envelope.ID, q.DeadLetterName(queueName))
			} else {
				if err := q.pushEnvelope(conn, queueName, envelope); err != nil {
					return err
				}
			}
		}

		if _, err := conn.Do("ZREM", deadlineKey(queueName), id); err != nil {
			return err
		}
		if _, err := conn.Do("HDEL", inflightKey(queueName), id); err != nil {
			return err
		}
	}

	return nil
}

func (q *RedisQueue) pushEnvelope(conn redis.Conn, queueName string, envelope redisEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	_, err = conn.Do("RPUSH", pendingKey(queueName), payload)
	return err
}

func pendingKey(queueName string) string {
	return "queue:" + queueName
}

func inflightKey(queueName string) string {
	return "queue:" + queueName + ":inflight"
}

func deadlineKey(queueName string) string {
	return "queue:" + queueName + ":deadline"
}
