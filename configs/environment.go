package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/golangid/questionario-service/pkg/helper"
	"github.com/golangid/questionario-service/pkg/queue"
)

// Env model
type Env struct {
	ServiceName string
	Environment string

	// UseREST serve the public submission api
	UseREST bool
	// UseQueueConsumer run the asynchronous resposta consumer worker
	UseQueueConsumer bool
	// UseCronScheduler run the scheduled queue health monitor
	UseCronScheduler bool

	DebugMode bool

	HTTPPort int

	// MaxGoroutines env for goroutine semaphore per worker handler
	MaxGoroutines int

	// QueueBackend selects the transport implementation, "rabbitmq" or "redis"
	QueueBackend queue.Backend

	RabbitMQ struct {
		Broker                 string
		ExchangeName           string
		DeadLetterExchangeName string
	}

	RedisQueue struct {
		Host string
	}

	// Queue pipeline tunables
	QueueRespostasName        string
	QueueDeadLetterSuffix     string
	QueueMaxRetry             int
	QueueReprocessBatchSize   int
	QueueVisibilityTimeout    time.Duration
	QueueMonitorInterval      time.Duration
	RejeitarRespostaDuplicada bool

	DeadLetterWarningThreshold int
	BacklogWarningThreshold    int
	BacklogCriticalThreshold   int

	// Database environment
	DbSQLWriteDSN, DbSQLReadDSN string
}

var env Env

// BaseEnv get global basic environment
func BaseEnv() Env {
	return env
}

// Load environment from .env file in workdir and os environment
func Load(serviceName string) {
	if err := godotenv.Load(os.Getenv(helper.WORKDIR) + ".env"); err != nil {
		log.Printf("warning: %v", err)
	}

	env.ServiceName = serviceName
	env.Environment = os.Getenv("ENVIRONMENT")
	env.DebugMode = helper.ParseEnvBool("DEBUG_MODE")

	env.UseREST = helper.ParseEnvBool("USE_REST")
	env.UseQueueConsumer = helper.ParseEnvBool("USE_QUEUE_CONSUMER")
	env.UseCronScheduler = helper.ParseEnvBool("USE_CRON_SCHEDULER")

	env.HTTPPort = helper.ParseEnvInt("HTTP_PORT", 8000)
	env.MaxGoroutines = helper.ParseEnvInt("MAX_GOROUTINES", 10)

	backend := strings.ToLower(os.Getenv("QUEUE_BACKEND"))
	switch queue.Backend(backend) {
	case queue.RabbitMQBackend, queue.RedisBackend:
		env.QueueBackend = queue.Backend(backend)
	case "":
		env.QueueBackend = queue.RabbitMQBackend
	default:
		panic("environment QUEUE_BACKEND must be \"rabbitmq\" or \"redis\", got: " + backend)
	}

	env.RabbitMQ.Broker = os.Getenv("RABBITMQ_BROKER")
	env.RabbitMQ.ExchangeName = os.Getenv("RABBITMQ_EXCHANGE_NAME")
	if env.RabbitMQ.ExchangeName == "" {
		env.RabbitMQ.ExchangeName = "questionario"
	}
	env.RabbitMQ.DeadLetterExchangeName = os.Getenv("RABBITMQ_DLX_NAME")
	if env.RabbitMQ.DeadLetterExchangeName == "" {
		env.RabbitMQ.DeadLetterExchangeName = env.RabbitMQ.ExchangeName + ".dlx"
	}

	env.RedisQueue.Host = os.Getenv("REDIS_QUEUE_HOST")

	env.QueueRespostasName = os.Getenv("QUEUE_RESPOSTAS_NAME")
	if env.QueueRespostasName == "" {
		env.QueueRespostasName = "respostas-questionario"
	}
	env.QueueDeadLetterSuffix = os.Getenv("QUEUE_DEAD_LETTER_SUFFIX")
	if env.QueueDeadLetterSuffix == "" {
		env.QueueDeadLetterSuffix = "-deadletter"
	}
	env.QueueMaxRetry = helper.ParseEnvInt("QUEUE_MAX_RETRY", 3)
	env.QueueReprocessBatchSize = helper.ParseEnvInt("QUEUE_REPROCESS_BATCH_SIZE", 100)
	env.QueueVisibilityTimeout = helper.ParseEnvDuration("QUEUE_VISIBILITY_TIMEOUT", 5*time.Minute)
	env.QueueMonitorInterval = helper.ParseEnvDuration("QUEUE_MONITOR_INTERVAL", 5*time.Minute)
	env.RejeitarRespostaDuplicada = helper.ParseEnvBool("REJEITAR_RESPOSTA_DUPLICADA")

	env.DeadLetterWarningThreshold = helper.ParseEnvInt("QUEUE_DEAD_LETTER_WARNING_THRESHOLD", 10)
	env.BacklogWarningThreshold = helper.ParseEnvInt("QUEUE_BACKLOG_WARNING_THRESHOLD", 1000)
	env.BacklogCriticalThreshold = helper.ParseEnvInt("QUEUE_BACKLOG_CRITICAL_THRESHOLD", 10000)

	env.DbSQLReadDSN = os.Getenv("SQL_DB_READ_DSN")
	env.DbSQLWriteDSN = os.Getenv("SQL_DB_WRITE_DSN")
}
