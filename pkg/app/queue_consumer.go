package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/golangid/questionario-service/configs"
	"github.com/golangid/questionario-service/internal/factory"
	"github.com/golangid/questionario-service/pkg/logger"
	"github.com/golangid/questionario-service/pkg/queue"
)

const defaultPollInterval = time.Second

type queueConsumerWorker struct {
	ctx           context.Context
	ctxCancelFunc func()

	messageQueue  queue.MessageQueue
	handlers      map[string]factory.WorkerHandlerFunc
	shutdown      chan struct{}
	semaphore     chan struct{}
	wg            sync.WaitGroup
	pollInterval  time.Duration
	maxGoroutines int
}

// NewQueueConsumerWorker create new queue consumer worker
func NewQueueConsumerWorker(service factory.ServiceFactory) factory.AppServerFactory {
	worker := &queueConsumerWorker{
		messageQueue:  service.GetDependency().Queue,
		handlers:      make(map[string]factory.WorkerHandlerFunc),
		shutdown:      make(chan struct{}),
		pollInterval:  defaultPollInterval,
		maxGoroutines: configs.BaseEnv().MaxGoroutines,
	}
	worker.semaphore = make(chan struct{}, worker.maxGoroutines)

	for _, m := range service.GetModules() {
		if h := m.WorkerHandler(factory.QueueConsumer); h != nil {
			var handlerGroup factory.WorkerHandlerGroup
			h.MountHandlers(&handlerGroup)
			for _, handler := range handlerGroup.Handlers {
				logger.LogYellow(fmt.Sprintf(`[QUEUE-CONSUMER] (queue): %-15s  --> (module): "%s"`, `"`+handler.Pattern+`"`, m.Name()))
				worker.handlers[handler.Pattern] = handler.HandlerFunc
			}
		}
	}
	fmt.Printf("\x1b[34;1m⇨ Queue consumer running with %d queues\x1b[0m\n\n", len(worker.handlers))

	worker.ctx, worker.ctxCancelFunc = context.WithCancel(context.Background())
	return worker
}

func (w *queueConsumerWorker) Serve() {
	for queueName, handler := range w.handlers {
		go w.consumeLoop(queueName, handler)
	}

	<-w.shutdown
}

func (w *queueConsumerWorker) consumeLoop(queueName string, handler factory.WorkerHandlerFunc) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdown:
			return
		case <-ticker.C:
		}

		messages, err := w.messageQueue.ReceiveBatch(w.ctx, queueName, w.maxGoroutines)
		if err != nil {
			if w.ctx.Err() == nil {
				logger.LogEf("queue_consumer > receive from %s: %v", queueName, err)
			}
			continue
		}

		for _, message := range messages {
			w.semaphore <- struct{}{}
			w.wg.Add(1)
			go func(msg queue.ReceivedMessage) {
				defer func() {
					w.wg.Done()
					<-w.semaphore
				}()

				w.processMessage(queueName, handler, msg)
			}(message)
		}
	}
}

func (w *queueConsumerWorker) processMessage(queueName string, handler factory.WorkerHandlerFunc, msg queue.ReceivedMessage) {
	if w.ctx.Err() != nil {
		logger.LogRed("queue_consumer > ctx root err: " + w.ctx.Err().Error())
		return
	}

	if err := handler(w.ctx, msg.Body); err != nil {
		// only transient failures propagate here, unprocessable messages are
		// dropped by the handler itself. The message stays undeleted so
		// redelivery and the retry budget decide its fate
		logger.LogEf("queue_consumer > handler error on %s (attempt %d): %v", queueName, msg.Attempts, err)
		return
	}

	logger.LogIfError(w.messageQueue.Delete(w.ctx, queueName, msg))
}

func (w *queueConsumerWorker) Shutdown(ctx context.Context) {
	defer log.Println("\x1b[33;1mStopping Queue Consumer:\x1b[0m \x1b[32;1mSUCCESS\x1b[0m")

	close(w.shutdown)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		done <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		w.ctxCancelFunc()
	case <-done:
		w.ctxCancelFunc()
	}
}

func (w *queueConsumerWorker) Name() string {
	return string(factory.QueueConsumer)
}
