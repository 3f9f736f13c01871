package resposta

import (
	"github.com/golangid/questionario-service/configs"
	"github.com/golangid/questionario-service/internal/factory"
	"github.com/golangid/questionario-service/internal/modules/resposta/delivery/resthandler"
	"github.com/golangid/questionario-service/internal/modules/resposta/delivery/workerhandler"
	"github.com/golangid/questionario-service/internal/modules/resposta/repository"
	"github.com/golangid/questionario-service/internal/modules/resposta/usecase"
)

// Name module name
const Name factory.Module = "Resposta"

// Module model
type Module struct {
	restHandler  *resthandler.RestHandler
	queueHandler *workerhandler.QueueHandler
	cronHandler  *workerhandler.CronHandler
}

// NewModule module constructor
func NewModule(deps *factory.Dependency) *Module {
	env := configs.BaseEnv()

	repo := repository.NewRepository(deps.SQLReadDB, deps.SQLWriteDB)
	uc := usecase.NewRespostaUsecase(repo.Questionario, repo.Resposta, deps.Queue, deps.Validator, usecase.Config{
		QueueRespostasName:         env.QueueRespostasName,
		RejeitarRespostaDuplicada:  env.RejeitarRespostaDuplicada,
		DeadLetterWarningThreshold: env.DeadLetterWarningThreshold,
		BacklogWarningThreshold:    env.BacklogWarningThreshold,
		BacklogCriticalThreshold:   env.BacklogCriticalThreshold,
		ReprocessBatchSize:         env.QueueReprocessBatchSize,
	})

	return &Module{
		restHandler:  resthandler.NewRestHandler(uc),
		queueHandler: workerhandler.NewQueueHandler(uc, env.QueueRespostasName),
		cronHandler:  workerhandler.NewCronHandler(uc, env.QueueMonitorInterval.String()),
	}
}

// RestHandler method
func (m *Module) RestHandler() factory.EchoRestHandler {
	return m.restHandler
}

// WorkerHandler method
func (m *Module) WorkerHandler(workerType factory.Worker) factory.WorkerHandlerMounter {
	switch workerType {
	case factory.QueueConsumer:
		return m.queueHandler
	case factory.Scheduler:
		return m.cronHandler
	}
	return nil
}

// Name get module name
func (m *Module) Name() factory.Module {
	return Name
}
