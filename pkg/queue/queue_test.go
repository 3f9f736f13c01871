package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
)

func TestDeadLetterName(t *testing.T) {
	rabbit := &RabbitMQQueue{dlqSuffix: "-deadletter"}
	assert.Equal(t, "respostas-questionario-deadletter", rabbit.DeadLetterName("respostas-questionario"))

	redisQueue := &RedisQueue{dlqSuffix: ".dlq"}
	assert.Equal(t, "respostas-questionario.dlq", redisQueue.DeadLetterName("respostas-questionario"))
}

func TestRabbitMQChannelAlive(t *testing.T) {
	t.Run("Testcase #1: Positive, open channel stays usable", func(t *testing.T) {
		q := &RabbitMQQueue{chClosed: make(chan *amqp.Error, 1)}
		assert.True(t, q.channelAlive())
	})

	t.Run("Testcase #2: Negative, broker exception marks the channel dead", func(t *testing.T) {
		q := &RabbitMQQueue{chClosed: make(chan *amqp.Error, 1)}
		q.chClosed <- &amqp.Error{Code: amqp.PreconditionFailed, Reason: "PRECONDITION_FAILED"}
		assert.False(t, q.channelAlive())
	})

	t.Run("Testcase #3: Negative, closed notify channel stays dead until reconnect", func(t *testing.T) {
		notify := make(chan *amqp.Error)
		close(notify)
		q := &RabbitMQQueue{chClosed: notify}
		assert.False(t, q.channelAlive())
		assert.False(t, q.channelAlive())
	})
}

func TestRabbitMQDeleteExpiredReceipt(t *testing.T) {
	q := &RabbitMQQueue{
		conn:     new(amqp.Connection),
		ch:       new(amqp.Channel),
		chClosed: make(chan *amqp.Error, 1),
		pending: map[string]map[uint64]time.Time{
			"respostas": {11: time.Now().Add(5 * time.Minute)},
		},
	}

	// tag 7 was released back to the queue, acking it would kill the channel
	err := q.Delete(context.Background(), "respostas", ReceivedMessage{ID: "m1", Receipt: "7"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestRedisEnvelopeRoundTrip(t *testing.T) {
	in := redisEnvelope{ID: "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", Attempts: 2, Body: []byte(`{"questionarioId":"x"}`)}

	payload, err := json.Marshal(in)
	assert.NoError(t, err)

	var out redisEnvelope
	assert.NoError(t, json.Unmarshal(payload, &out))
	assert.Equal(t, in, out)
}

func TestRedisKeys(t *testing.T) {
	assert.Equal(t, "queue:respostas", pendingKey("respostas"))
	assert.Equal(t, "queue:respostas:inflight", inflightKey("respostas"))
	assert.Equal(t, "queue:respostas:deadline", deadlineKey("respostas"))
}
