package workerhandler

import (
	"context"

	"github.com/golangid/questionario-service/internal/factory"
	"github.com/golangid/questionario-service/internal/modules/resposta/usecase"
	"github.com/golangid/questionario-service/pkg/helper"
)

// CronHandler scheduled queue health monitor
type CronHandler struct {
	uc       usecase.RespostaUsecase
	interval string
}

// NewCronHandler create new cron handler, interval is a time duration string
func NewCronHandler(uc usecase.RespostaUsecase, interval string) *CronHandler {
	return &CronHandler{uc: uc, interval: interval}
}

// MountHandlers mount handler group
func (h *CronHandler) MountHandlers(group *factory.WorkerHandlerGroup) {
	group.Add(helper.CronJobKeyToString("monitor-fila", h.interval), h.monitorFila)
}

func (h *CronHandler) monitorFila(ctx context.Context, _ []byte) error {
	_, err := h.uc.MonitorFila(ctx)
	return err
}
