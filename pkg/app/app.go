package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golangid/questionario-service/configs"
	"github.com/golangid/questionario-service/internal/factory"
	"github.com/golangid/questionario-service/pkg/logger"
)

// App service
type App struct {
	servers []factory.AppServerFactory
}

// New service app
func New(service factory.ServiceFactory) *App {
	log.Printf("Starting service \"%s\"\n\n", service.Name())

	appInstance := new(App)
	env := configs.BaseEnv()

	if env.UseREST {
		appInstance.servers = append(appInstance.servers, NewRESTServer(service))
	}
	if env.UseQueueConsumer {
		appInstance.servers = append(appInstance.servers, NewQueueConsumerWorker(service))
	}
	if env.UseCronScheduler {
		appInstance.servers = append(appInstance.servers, NewCronWorker(service))
	}

	return appInstance
}

// Run start app and all selected servers or workers
func (a *App) Run() {
	if len(a.servers) == 0 {
		panic("No server/worker running, set at least one of USE_REST, USE_QUEUE_CONSUMER, USE_CRON_SCHEDULER")
	}

	errServe := make(chan error)
	for _, server := range a.servers {
		go func(srv factory.AppServerFactory) {
			defer func() {
				if r := recover(); r != nil {
					errServe <- fmt.Errorf("%v", r)
				}
			}()
			srv.Serve()
		}(server)
	}

	quitSignal := make(chan os.Signal, 1)
	signal.Notify(quitSignal, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errServe:
		panic(err)
	case <-quitSignal:
		a.shutdown(quitSignal)
	}
}

// graceful shutdown all servers, forced when a second signal arrives
func (a *App) shutdown(forceShutdown chan os.Signal) {
	fmt.Println("\x1b[34;1mGracefully shutdown... (press Ctrl+C again to force)\x1b[0m")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for _, server := range a.servers {
			server.Shutdown(ctx)
		}
		done <- struct{}{}
	}()

	select {
	case <-done:
		log.Println("\x1b[32;1mSuccess shutdown all server & worker\x1b[0m")
	case <-forceShutdown:
		logger.LogRed("Force shutdown server & worker")
		cancel()
	case <-ctx.Done():
		logger.LogRed("Timeout shutdown server & worker")
	}
}
