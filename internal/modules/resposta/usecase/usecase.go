package usecase

import (
	"context"
	"time"

	"github.com/golangid/questionario-service/internal/modules/resposta/domain"
	"github.com/golangid/questionario-service/internal/modules/resposta/repository/interfaces"
	"github.com/golangid/questionario-service/pkg/queue"
	"github.com/golangid/questionario-service/pkg/validator"
)

// RespostaUsecase abstraction
type RespostaUsecase interface {
	// RegistrarResposta validate and enqueue one resposta, returns provisional receipt
	RegistrarResposta(ctx context.Context, req *domain.RegistrarRespostaRequest) (*domain.RespostaRegistrada, error)

	// ProcessarResposta consume one queue message and persist the resposta
	ProcessarResposta(ctx context.Context, message []byte) error

	// MonitorFila one health monitor cycle with dead letter reprocessing
	MonitorFila(ctx context.Context) (*domain.MonitorFilaResult, error)

	ObterRespostasPorQuestionario(ctx context.Context, questionarioID string) ([]domain.RespostaDetalhe, error)
	ObterResultadoQuestionario(ctx context.Context, questionarioID string) (*domain.ResultadoQuestionario, error)
}

// Config tunables for the resposta pipeline
type Config struct {
	QueueRespostasName string

	// RejeitarRespostaDuplicada reject a second resposta from the same origin fingerprint
	RejeitarRespostaDuplicada bool

	DeadLetterWarningThreshold int
	BacklogWarningThreshold    int
	BacklogCriticalThreshold   int
	ReprocessBatchSize         int
}

type respostaUsecaseImpl struct {
	questionarioRepo interfaces.Questionario
	respostaRepo     interfaces.Resposta
	messageQueue     queue.MessageQueue
	validator        *validator.StructValidator
	alert            AlertNotifier
	cfg              Config

	timeNow func() time.Time
}

// OptionFunc type
type OptionFunc func(*respostaUsecaseImpl)

// SetAlertNotifier option func, replace default log based notifier
func SetAlertNotifier(notifier AlertNotifier) OptionFunc {
	return func(u *respostaUsecaseImpl) {
		u.alert = notifier
	}
}

// NewRespostaUsecase constructor
func NewRespostaUsecase(questionarioRepo interfaces.Questionario, respostaRepo interfaces.Resposta,
	messageQueue queue.MessageQueue, structValidator *validator.StructValidator, cfg Config, opts ...OptionFunc) RespostaUsecase {

	uc := &respostaUsecaseImpl{
		questionarioRepo: questionarioRepo,
		respostaRepo:     respostaRepo,
		messageQueue:     messageQueue,
		validator:        structValidator,
		alert:            NewLogAlertNotifier(),
		cfg:              cfg,
		timeNow:          time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
