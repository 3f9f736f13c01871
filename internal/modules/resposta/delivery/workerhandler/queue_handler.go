package workerhandler

import (
	"context"

	"github.com/golangid/questionario-service/internal/factory"
	"github.com/golangid/questionario-service/internal/modules/resposta/usecase"
)

// QueueHandler consume resposta messages from the primary queue
type QueueHandler struct {
	uc        usecase.RespostaUsecase
	queueName string
}

// NewQueueHandler create new queue consumer handler
func NewQueueHandler(uc usecase.RespostaUsecase, queueName string) *QueueHandler {
	return &QueueHandler{uc: uc, queueName: queueName}
}

// MountHandlers mount handler group
func (h *QueueHandler) MountHandlers(group *factory.WorkerHandlerGroup) {
	group.Add(h.queueName, h.processarResposta)
}

func (h *QueueHandler) processarResposta(ctx context.Context, message []byte) error {
	return h.uc.ProcessarResposta(ctx, message)
}
