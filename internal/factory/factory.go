package factory

import (
	"context"
)

// AppServerFactory factory for server and/or worker abstraction
type AppServerFactory interface {
	Serve()
	Shutdown(ctx context.Context)
	Name() string
}

// ModuleFactory factory
type ModuleFactory interface {
	RestHandler() EchoRestHandler
	WorkerHandler(workerType Worker) WorkerHandlerMounter
	Name() Module
}

// ServiceFactory factory
type ServiceFactory interface {
	GetDependency() *Dependency
	GetModules() []ModuleFactory
	Name() Service
}
