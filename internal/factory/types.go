package factory

import (
	"context"

	"github.com/labstack/echo"
)

// Service is the type returned by a classifier service name
type Service string

// Module is the type returned by a classifier module name
type Module string

// Server is the type returned by a classifier server
type Server string

// Worker is the type returned by a classifier worker
type Worker string

const (
	// REST server
	REST Server = "rest"

	// QueueConsumer worker, consumes the response queue
	QueueConsumer Worker = "queue_consumer"
	// Scheduler worker
	Scheduler Worker = "scheduler"
)

type (
	// WorkerHandlerFunc types
	WorkerHandlerFunc func(ctx context.Context, message []byte) error

	// WorkerHandler types
	WorkerHandler struct {
		Pattern     string
		HandlerFunc WorkerHandlerFunc
	}
)

// WorkerHandlerGroup group of worker handlers by pattern string
type WorkerHandlerGroup struct {
	Handlers []WorkerHandler
}

// Add method from WorkerHandlerGroup, pattern can contains queue name or serialized cron job key
func (m *WorkerHandlerGroup) Add(pattern string, handlerFunc WorkerHandlerFunc) {
	m.Handlers = append(m.Handlers, WorkerHandler{
		Pattern: pattern, HandlerFunc: handlerFunc,
	})
}

// EchoRestHandler delivery factory for echo handler
type EchoRestHandler interface {
	Mount(group *echo.Group)
}

// WorkerHandlerMounter delivery factory for all worker handler
type WorkerHandlerMounter interface {
	MountHandlers(group *WorkerHandlerGroup)
}
