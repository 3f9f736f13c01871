package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/golangid/questionario-service/internal/factory"
	"github.com/golangid/questionario-service/pkg/helper"
	"github.com/golangid/questionario-service/pkg/logger"
)

type cronJob struct {
	name     string
	interval time.Duration
	handler  factory.WorkerHandlerFunc

	// single flight guard, a slow run must not overlap the next tick
	running chan struct{}
}

type cronWorker struct {
	ctx           context.Context
	ctxCancelFunc func()

	jobs     []*cronJob
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewCronWorker create new cron worker
func NewCronWorker(service factory.ServiceFactory) factory.AppServerFactory {
	worker := &cronWorker{
		shutdown: make(chan struct{}),
	}

	for _, m := range service.GetModules() {
		if h := m.WorkerHandler(factory.Scheduler); h != nil {
			var handlerGroup factory.WorkerHandlerGroup
			h.MountHandlers(&handlerGroup)
			for _, handler := range handlerGroup.Handlers {
				jobName, interval := helper.ParseCronJobKey(handler.Pattern)

				duration, err := time.ParseDuration(interval)
				if err != nil {
					panic(fmt.Errorf(`Cron Worker: "%s" %v`, interval, err))
				}
				worker.jobs = append(worker.jobs, &cronJob{
					name: jobName, interval: duration, handler: handler.HandlerFunc,
					running: make(chan struct{}, 1),
				})
				logger.LogYellow(fmt.Sprintf(`[CRON-WORKER] (job name): %s (every): %-8s  --> (module): "%s"`, `"`+jobName+`"`, interval, m.Name()))
			}
		}
	}
	fmt.Printf("\x1b[34;1m⇨ Cron worker running with %d jobs\x1b[0m\n\n", len(worker.jobs))

	worker.ctx, worker.ctxCancelFunc = context.WithCancel(context.Background())
	return worker
}

func (c *cronWorker) Serve() {
	for _, job := range c.jobs {
		go c.runJob(job)
	}

	<-c.shutdown
}

func (c *cronWorker) runJob(job *cronJob) {
	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.shutdown:
			return
		case <-ticker.C:
		}

		select {
		case job.running <- struct{}{}:
		default:
			// previous run still in flight, skip this tick
			continue
		}

		c.wg.Add(1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					logger.LogRed(fmt.Sprintf("cron_worker > panic on job %s: %v", job.name, r))
				}
				c.wg.Done()
				<-job.running
			}()

			if c.ctx.Err() != nil {
				logger.LogRed("cron_worker > ctx root err: " + c.ctx.Err().Error())
				return
			}
			logger.LogIfError(job.handler(c.ctx, nil))
		}()
	}
}

func (c *cronWorker) Shutdown(ctx context.Context) {
	defer log.Println("\x1b[33;1mStopping Cron Job Scheduler:\x1b[0m \x1b[32;1mSUCCESS\x1b[0m")

	close(c.shutdown)

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		done <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		c.ctxCancelFunc()
	case <-done:
		c.ctxCancelFunc()
	}
}

func (c *cronWorker) Name() string {
	return string(factory.Scheduler)
}
