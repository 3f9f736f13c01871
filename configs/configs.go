package configs

import (
	"context"
	"database/sql"
	"time"

	"github.com/gomodule/redigo/redis"
	_ "github.com/lib/pq"

	"github.com/golangid/questionario-service/internal/factory"
	"github.com/golangid/questionario-service/pkg/logger"
	"github.com/golangid/questionario-service/pkg/queue"
	"github.com/golangid/questionario-service/pkg/validator"
)

// Init load environment and construct all dependencies used by the service
func Init(serviceName string) (*factory.Dependency, func(context.Context)) {
	Load(serviceName)

	logger.InitZap()
	logger.SetDebugMode(env.DebugMode)

	readDB := initSQLDatabase("read", env.DbSQLReadDSN)
	writeDB := initSQLDatabase("write", env.DbSQLWriteDSN)
	messageQueue := initMessageQueue()

	deps := &factory.Dependency{
		Queue:      messageQueue,
		SQLReadDB:  readDB,
		SQLWriteDB: writeDB,
		Validator:  validator.NewStructValidator(),
	}

	closeFn := func(ctx context.Context) {
		defer logger.LogWithDefer("configs: closing all connections")()

		logger.LogIfError(messageQueue.Disconnect(ctx))
		logger.LogIfError(readDB.Close())
		logger.LogIfError(writeDB.Close())
	}
	return deps, closeFn
}

func initSQLDatabase(connName, dsn string) *sql.DB {
	defer logger.LogWithDefer("Load SQL " + connName + " connection...")()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		panic("SQL " + connName + ": " + err.Error())
	}
	if err := db.Ping(); err != nil {
		panic("SQL " + connName + " ping: " + err.Error())
	}
	return db
}

func initMessageQueue() queue.MessageQueue {
	switch env.QueueBackend {
	case queue.RedisBackend:
		defer logger.LogWithDefer("Load redis queue connection...")()

		pool := &redis.Pool{
			MaxIdle:     10,
			IdleTimeout: 4 * time.Minute,
			Dial: func() (redis.Conn, error) {
				return redis.DialURL(env.RedisQueue.Host)
			},
		}
		return queue.NewRedisQueue(
			queue.RedisSetPool(pool),
			queue.RedisSetDeadLetterSuffix(env.QueueDeadLetterSuffix),
			queue.RedisSetMaxRetry(env.QueueMaxRetry),
			queue.RedisSetVisibilityTimeout(env.QueueVisibilityTimeout),
		)

	default:
		defer logger.LogWithDefer("Load rabbitmq queue connection...")()

		return queue.NewRabbitMQQueue(
			queue.RabbitMQSetBrokerHost(env.RabbitMQ.Broker),
			queue.RabbitMQSetExchange(env.RabbitMQ.ExchangeName, env.RabbitMQ.DeadLetterExchangeName),
			queue.RabbitMQSetDeadLetterSuffix(env.QueueDeadLetterSuffix),
			queue.RabbitMQSetMaxRetry(env.QueueMaxRetry),
			queue.RabbitMQSetVisibilityTimeout(env.QueueVisibilityTimeout),
		)
	}
}
