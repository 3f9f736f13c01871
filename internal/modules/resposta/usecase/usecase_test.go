package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/golangid/questionario-service/internal/modules/resposta/domain"
	mockrepo "github.com/golangid/questionario-service/pkg/mocks/modules/resposta/repository"
	mockusecase "github.com/golangid/questionario-service/pkg/mocks/modules/resposta/usecase"
	mockqueue "github.com/golangid/questionario-service/pkg/mocks/queue"
	"github.com/golangid/questionario-service/pkg/queue"
	shareddomain "github.com/golangid/questionario-service/pkg/shared/domain"
	"github.com/golangid/questionario-service/pkg/validator"
)

var (
	fixedNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	questionarioID = uuid.MustParse("6f1c3f41-61b8-4a4e-9f2b-0cfb6f2cafcd")
	perguntaUmID   = uuid.MustParse("0a9f9fd6-4a3a-48af-97ea-b3f1c95cf278")
	perguntaDoisID = uuid.MustParse("5be3ca8f-2a5f-4a90-8c5f-cd4cbaf0a111")
	opcaoSimID     = uuid.MustParse("b6d258b1-7f2f-4f8c-bbe0-1b7bd748f222")
	opcaoNaoID     = uuid.MustParse("e3c9c0ea-9303-4ab0-9a6e-274b68d9a333")
	opcaoTalvezID  = uuid.MustParse("9ce2d9ba-4a34-47e6-83c9-1135cbf4a444")
)

func questionarioPublicado() *shareddomain.Questionario {
	return &shareddomain.Questionario{
		ID:     questionarioID,
		Titulo: "Pesquisa de Satisfacao",
		Status: shareddomain.StatusPublicado,
		Periodo: shareddomain.PeriodoColeta{
			DataInicio: fixedNow.Add(-24 * time.Hour),
			DataFim:    fixedNow.Add(24 * time.Hour),
		},
		Perguntas: []shareddomain.Pergunta{
			{
				ID: perguntaUmID, QuestionarioID: questionarioID, Texto: "Recomendaria o servico?", Ordem: 1, Obrigatoria: true,
				Opcoes: []shareddomain.OpcaoResposta{
					{ID: opcaoSimID, PerguntaID: perguntaUmID, Texto: "Sim", Ordem: 1},
					{ID: opcaoNaoID, PerguntaID: perguntaUmID, Texto: "Nao", Ordem: 2},
				},
			},
			{
				ID: perguntaDoisID, QuestionarioID: questionarioID, Texto: "Voltaria a usar?", Ordem: 2, Obrigatoria: false,
				Opcoes: []shareddomain.OpcaoResposta{
					{ID: opcaoTalvezID, PerguntaID: perguntaDoisID, Texto: "Talvez", Ordem: 1},
				},
			},
		},
	}
}

func requestValida() *domain.RegistrarRespostaRequest {
	return &domain.RegistrarRespostaRequest{
		QuestionarioID: questionarioID.String(),
		Respostas: []domain.RespostaItemPayload{
			{PerguntaID: perguntaUmID.String(), OpcaoRespostaID: opcaoSimID.String()},
		},
		Estado:    "SP",
		Cidade:    "Sao Paulo",
		IPAddress: "10.0.0.1",
		UserAgent: "Mozilla/5.0",
	}
}

func newTestUsecase(questionarioRepo *mockrepo.Questionario, respostaRepo *mockrepo.Resposta, messageQueue *mockqueue.MessageQueue, cfg Config) *respostaUsecaseImpl {
	if cfg.QueueRespostasName == "" {
		cfg.QueueRespostasName = "respostas-questionario"
	}
	if cfg.ReprocessBatchSize == 0 {
		cfg.ReprocessBatchSize = 100
	}
	if cfg.DeadLetterWarningThreshold == 0 {
		cfg.DeadLetterWarningThreshold = 10
	}
	if cfg.BacklogWarningThreshold == 0 {
		cfg.BacklogWarningThreshold = 1000
	}
	if cfg.BacklogCriticalThreshold == 0 {
		cfg.BacklogCriticalThreshold = 10000
	}
	return &respostaUsecaseImpl{
		questionarioRepo: questionarioRepo,
		respostaRepo:     respostaRepo,
		messageQueue:     messageQueue,
		validator:        validator.NewStructValidator(),
		alert:            NewLogAlertNotifier(),
		cfg:              cfg,
		timeNow:          func() time.Time { return fixedNow },
	}
}

func TestRespostaUsecaseImplRegistrarResposta(t *testing.T) {
	t.Run("Testcase #1: Positive, resposta completa aceita e enfileirada", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("Send", mock.Anything, "respostas-questionario", mock.MatchedBy(func(body []byte) bool {
			var payload domain.RespostaParaProcessamento
			if err := json.Unmarshal(body, &payload); err != nil {
				return false
			}
			return payload.QuestionarioID == questionarioID.String() && len(payload.Respostas) == 1
		})).Return(nil)

		uc := newTestUsecase(questionarioRepo, &mockrepo.Resposta{}, messageQueue, Config{})

		receipt, err := uc.RegistrarResposta(context.Background(), requestValida())
		assert.NoError(t, err)
		assert.NotNil(t, receipt)
		assert.NotEmpty(t, receipt.ReceiptID)
		assert.Equal(t, questionarioID.String(), receipt.QuestionarioID)
		assert.Equal(t, fixedNow, receipt.AcceptedAtUTC)
		messageQueue.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Testcase #2: Negative, payload invalido nao toca o repositorio nem a fila", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		messageQueue := &mockqueue.MessageQueue{}
		uc := newTestUsecase(questionarioRepo, &mockrepo.Resposta{}, messageQueue, Config{})

		req := requestValida()
		req.Respostas = nil

		_, err := uc.RegistrarResposta(context.Background(), req)
		assert.Error(t, err)
		questionarioRepo.AssertNotCalled(t, "ObterPorIDComPerguntas")
		messageQueue.AssertNotCalled(t, "Send")
	})

	t.Run("Testcase #3: Negative, questionario inexistente", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).
			Return(nil, shareddomain.NewNotFoundError("questionario nao encontrado"))

		messageQueue := &mockqueue.MessageQueue{}
		uc := newTestUsecase(questionarioRepo, &mockrepo.Resposta{}, messageQueue, Config{})

		_, err := uc.RegistrarResposta(context.Background(), requestValida())
		assert.Error(t, err)
		assert.Equal(t, shareddomain.ErrKindNotFound, shareddomain.KindOf(err))
		messageQueue.AssertNotCalled(t, "Send")
	})

	t.Run("Testcase #4: Negative, questionario encerrado", func(t *testing.T) {
		questionario := questionarioPublicado()
		questionario.Status = shareddomain.StatusEncerrado

		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionario, nil)

		messageQueue := &mockqueue.MessageQueue{}
		uc := newTestUsecase(questionarioRepo, &mockrepo.Resposta{}, messageQueue, Config{})

		_, err := uc.RegistrarResposta(context.Background(), requestValida())
		assert.Equal(t, shareddomain.ErrKindClosedQuestionario, shareddomain.KindOf(err))
		messageQueue.AssertNotCalled(t, "Send")
	})

	t.Run("Testcase #5: Negative, periodo de coleta ja encerrou", func(t *testing.T) {
		questionario := questionarioPublicado()
		questionario.Periodo.DataInicio = fixedNow.Add(-48 * time.Hour)
		questionario.Periodo.DataFim = fixedNow.Add(-24 * time.Hour)

		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionario, nil)

		messageQueue := &mockqueue.MessageQueue{}
		uc := newTestUsecase(questionarioRepo, &mockrepo.Resposta{}, messageQueue, Config{})

		_, err := uc.RegistrarResposta(context.Background(), requestValida())
		assert.Equal(t, shareddomain.ErrKindClosedQuestionario, shareddomain.KindOf(err))
		messageQueue.AssertNotCalled(t, "Send")
	})

	t.Run("Testcase #6: Negative, pergunta obrigatoria sem resposta identifica a faltante", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		messageQueue := &mockqueue.MessageQueue{}
		uc := newTestUsecase(questionarioRepo, &mockrepo.Resposta{}, messageQueue, Config{})

		req := requestValida()
		req.Respostas = []domain.RespostaItemPayload{
			{PerguntaID: perguntaDoisID.String(), OpcaoRespostaID: opcaoTalvezID.String()},
		}

		_, err := uc.RegistrarResposta(context.Background(), req)
		assert.Equal(t, shareddomain.ErrKindIncompleteResposta, shareddomain.KindOf(err))

		var domainErr *shareddomain.Error
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, []uuid.UUID{perguntaUmID}, domainErr.MissingPerguntas)
		messageQueue.AssertNotCalled(t, "Send")
	})

	t.Run("Testcase #7: Negative, falha de transporte apos validacao", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker unreachable"))

		uc := newTestUsecase(questionarioRepo, &mockrepo.Resposta{}, messageQueue, Config{})

		_, err := uc.RegistrarResposta(context.Background(), requestValida())
		assert.Equal(t, shareddomain.ErrKindTransport, shareddomain.KindOf(err))
	})

	t.Run("Testcase #8: Negative, origem duplicada rejeitada quando habilitado", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		respostaRepo := &mockrepo.Resposta{}
		respostaRepo.On("JaRespondeu", mock.Anything, questionarioID, mock.Anything).Return(true, nil)

		messageQueue := &mockqueue.MessageQueue{}
		uc := newTestUsecase(questionarioRepo, respostaRepo, messageQueue, Config{RejeitarRespostaDuplicada: true})

		_, err := uc.RegistrarResposta(context.Background(), requestValida())
		assert.Equal(t, shareddomain.ErrKindValidation, shareddomain.KindOf(err))
		messageQueue.AssertNotCalled(t, "Send")
	})
}

func TestRespostaUsecaseImplProcessarResposta(t *testing.T) {
	validMessage := func() []byte {
		body, _ := json.Marshal(domain.RespostaParaProcessamento{
			QuestionarioID: questionarioID.String(),
			Respostas: []domain.RespostaItemPayload{
				{PerguntaID: perguntaUmID.String(), OpcaoRespostaID: opcaoSimID.String()},
			},
			IPAddress: "10.0.0.1",
			UserAgent: "Mozilla/5.0",
			Estado:    "SP",
		})
		return body
	}

	t.Run("Testcase #1: Positive, mensagem valida persistida", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		respostaRepo := &mockrepo.Resposta{}
		respostaRepo.On("Adicionar", mock.Anything, mock.MatchedBy(func(resposta *shareddomain.Resposta) bool {
			return resposta.QuestionarioID == questionarioID && len(resposta.Itens) == 1 && resposta.Origem.Hash != ""
		})).Return(nil)

		uc := newTestUsecase(questionarioRepo, respostaRepo, &mockqueue.MessageQueue{}, Config{})

		err := uc.ProcessarResposta(context.Background(), validMessage())
		assert.NoError(t, err)
		respostaRepo.AssertNumberOfCalls(t, "Adicionar", 1)
	})

	t.Run("Testcase #2: Positive, mensagem malformada descartada sem retentativa", func(t *testing.T) {
		respostaRepo := &mockrepo.Resposta{}
		uc := newTestUsecase(&mockrepo.Questionario{}, respostaRepo, &mockqueue.MessageQueue{}, Config{})

		err := uc.ProcessarResposta(context.Background(), []byte("not a json"))
		assert.NoError(t, err)
		respostaRepo.AssertNotCalled(t, "Adicionar")
	})

	t.Run("Testcase #3: Negative, falha de persistencia", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		respostaRepo := &mockrepo.Resposta{}
		respostaRepo.On("Adicionar", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		uc := newTestUsecase(questionarioRepo, respostaRepo, &mockqueue.MessageQueue{}, Config{})

		err := uc.ProcessarResposta(context.Background(), validMessage())
		assert.Equal(t, shareddomain.ErrKindPersistence, shareddomain.KindOf(err))
	})

	t.Run("Testcase #4: Positive, redelivery duplicada descartada sem erro", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		respostaRepo := &mockrepo.Resposta{}
		respostaRepo.On("JaRespondeu", mock.Anything, questionarioID, mock.Anything).Return(true, nil)

		uc := newTestUsecase(questionarioRepo, respostaRepo, &mockqueue.MessageQueue{}, Config{RejeitarRespostaDuplicada: true})

		err := uc.ProcessarResposta(context.Background(), validMessage())
		assert.NoError(t, err)
		respostaRepo.AssertNotCalled(t, "Adicionar")
	})

	t.Run("Testcase #5: Positive, questionario inexistente descartado sem retentativa", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).
			Return(nil, shareddomain.NewNotFoundError("questionario nao encontrado"))

		respostaRepo := &mockrepo.Resposta{}
		uc := newTestUsecase(questionarioRepo, respostaRepo, &mockqueue.MessageQueue{}, Config{})

		err := uc.ProcessarResposta(context.Background(), validMessage())
		assert.NoError(t, err)
		respostaRepo.AssertNotCalled(t, "Adicionar")
	})

	t.Run("Testcase #6: Negative, falha transitoria ao carregar questionario mantem a mensagem na fila", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).
			Return(nil, errors.New("connection refused"))

		uc := newTestUsecase(questionarioRepo, &mockrepo.Resposta{}, &mockqueue.MessageQueue{}, Config{})

		err := uc.ProcessarResposta(context.Background(), validMessage())
		assert.Equal(t, shareddomain.ErrKindPersistence, shareddomain.KindOf(err))
	})

	t.Run("Testcase #7: Positive, resposta incompleta apos edicao do questionario descartada", func(t *testing.T) {
		editado := questionarioPublicado()
		editado.Perguntas[1].Obrigatoria = true

		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(editado, nil)

		respostaRepo := &mockrepo.Resposta{}
		uc := newTestUsecase(questionarioRepo, respostaRepo, &mockqueue.MessageQueue{}, Config{})

		err := uc.ProcessarResposta(context.Background(), validMessage())
		assert.NoError(t, err)
		respostaRepo.AssertNotCalled(t, "Adicionar")
	})
}

func TestRespostaUsecaseImplMonitorFila(t *testing.T) {
	const queueName = "respostas-questionario"
	const dlqName = "respostas-questionario-deadletter"

	t.Run("Testcase #1: Positive, fila saudavel sem dead letter", func(t *testing.T) {
		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("DeadLetterName", queueName).Return(dlqName)
		messageQueue.On("Metrics", mock.Anything, queueName).
			Return(queue.Metrics{QueueName: queueName, Exists: true, ApproximateMessageCount: 3}, nil)
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: false}, nil)

		uc := newTestUsecase(&mockrepo.Questionario{}, &mockrepo.Resposta{}, messageQueue, Config{})

		result, err := uc.MonitorFila(context.Background())
		assert.NoError(t, err)
		assert.True(t, result.Health.IsHealthy)
		assert.Equal(t, domain.HealthStatusHealthy, result.Health.Status)
		assert.Nil(t, result.Reprocess)
		messageQueue.AssertNotCalled(t, "ReceiveBatch")
	})

	t.Run("Testcase #2: Positive, backlog acima do limite vira aviso", func(t *testing.T) {
		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("DeadLetterName", queueName).Return(dlqName)
		messageQueue.On("Metrics", mock.Anything, queueName).
			Return(queue.Metrics{QueueName: queueName, Exists: true, ApproximateMessageCount: 1500}, nil)
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 0}, nil)

		uc := newTestUsecase(&mockrepo.Questionario{}, &mockrepo.Resposta{}, messageQueue, Config{})

		result, err := uc.MonitorFila(context.Background())
		assert.NoError(t, err)
		assert.True(t, result.Health.IsHealthy)
		assert.Equal(t, domain.HealthStatusWarning, result.Health.Status)
		assert.Len(t, result.Health.Warnings, 1)
	})

	t.Run("Testcase #3: Negative, backlog critico", func(t *testing.T) {
		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("DeadLetterName", queueName).Return(dlqName)
		messageQueue.On("Metrics", mock.Anything, queueName).
			Return(queue.Metrics{QueueName: queueName, Exists: true, ApproximateMessageCount: 20000}, nil)
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 0}, nil)

		uc := newTestUsecase(&mockrepo.Questionario{}, &mockrepo.Resposta{}, messageQueue, Config{})

		result, err := uc.MonitorFila(context.Background())
		assert.NoError(t, err)
		assert.False(t, result.Health.IsHealthy)
		assert.Equal(t, domain.HealthStatusUnhealthy, result.Health.Status)
	})

	t.Run("Testcase #4: Positive, drena lote limitado ao tamanho da dead letter", func(t *testing.T) {
		messages := []queue.ReceivedMessage{
			{ID: "1", Body: []byte(`{"questionarioId":"a"}`), Receipt: "r1"},
			{ID: "2", Body: []byte(`{"questionarioId":"b"}`), Receipt: "r2"},
			{ID: "3", Body: []byte(`{"questionarioId":"c"}`), Receipt: "r3"},
		}

		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("DeadLetterName", queueName).Return(dlqName)
		messageQueue.On("Metrics", mock.Anything, queueName).
			Return(queue.Metrics{QueueName: queueName, Exists: true, ApproximateMessageCount: 1}, nil).Once()
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 3}, nil).Once()
		messageQueue.On("ReceiveBatch", mock.Anything, dlqName, 3).Return(messages, nil)
		messageQueue.On("Send", mock.Anything, queueName, mock.Anything).Return(nil)
		messageQueue.On("Delete", mock.Anything, dlqName, mock.Anything).Return(nil)
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 0}, nil)

		uc := newTestUsecase(&mockrepo.Questionario{}, &mockrepo.Resposta{}, messageQueue, Config{})

		result, err := uc.MonitorFila(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, result.Reprocess)
		assert.Equal(t, 3, result.Reprocess.ReprocessedCount)
		assert.Equal(t, 0, result.Reprocess.FailedCount)
		messageQueue.AssertNumberOfCalls(t, "Send", 3)
		messageQueue.AssertNumberOfCalls(t, "Delete", 3)
	})

	t.Run("Testcase #5: Positive, dead letter maior que o lote usa o teto configurado", func(t *testing.T) {
		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("DeadLetterName", queueName).Return(dlqName)
		messageQueue.On("Metrics", mock.Anything, queueName).
			Return(queue.Metrics{QueueName: queueName, Exists: true, ApproximateMessageCount: 0}, nil).Once()
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 250}, nil).Once()
		messageQueue.On("ReceiveBatch", mock.Anything, dlqName, 100).Return([]queue.ReceivedMessage{}, nil)
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 0}, nil)

		uc := newTestUsecase(&mockrepo.Questionario{}, &mockrepo.Resposta{}, messageQueue, Config{})

		_, err := uc.MonitorFila(context.Background())
		assert.NoError(t, err)
		messageQueue.AssertCalled(t, "ReceiveBatch", mock.Anything, dlqName, 100)
	})

	t.Run("Testcase #6: Negative, falha parcial contabiliza sucesso e falha separados", func(t *testing.T) {
		messages := []queue.ReceivedMessage{
			{ID: "1", Body: []byte(`m1`), Receipt: "r1"},
			{ID: "2", Body: []byte(`m2`), Receipt: "r2"},
		}

		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("DeadLetterName", queueName).Return(dlqName)
		messageQueue.On("Metrics", mock.Anything, queueName).
			Return(queue.Metrics{QueueName: queueName, Exists: true, ApproximateMessageCount: 0}, nil).Once()
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 2}, nil).Once()
		messageQueue.On("ReceiveBatch", mock.Anything, dlqName, 2).Return(messages, nil)
		messageQueue.On("Send", mock.Anything, queueName, []byte(`m1`)).Return(nil)
		messageQueue.On("Send", mock.Anything, queueName, []byte(`m2`)).Return(errors.New("publish failed"))
		messageQueue.On("Delete", mock.Anything, dlqName, messages[0]).Return(nil)
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 1}, nil)

		uc := newTestUsecase(&mockrepo.Questionario{}, &mockrepo.Resposta{}, messageQueue, Config{})

		result, err := uc.MonitorFila(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Reprocess.ReprocessedCount)
		assert.Equal(t, 1, result.Reprocess.FailedCount)
		assert.Equal(t, 2, result.Reprocess.ReprocessedCount+result.Reprocess.FailedCount)
	})

	t.Run("Testcase #7: Negative, dead letter persistente dispara alerta critico", func(t *testing.T) {
		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("DeadLetterName", queueName).Return(dlqName)
		messageQueue.On("Metrics", mock.Anything, queueName).
			Return(queue.Metrics{QueueName: queueName, Exists: true, ApproximateMessageCount: 0}, nil).Once()
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 50}, nil).Once()
		messageQueue.On("ReceiveBatch", mock.Anything, dlqName, 50).Return([]queue.ReceivedMessage{}, nil)
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 50}, nil)

		alert := &mockusecase.AlertNotifier{}
		alert.On("Notify", mock.Anything, mock.MatchedBy(func(message string) bool {
			return message != ""
		})).Return(nil)

		uc := newTestUsecase(&mockrepo.Questionario{}, &mockrepo.Resposta{}, messageQueue, Config{})
		uc.alert = alert

		result, err := uc.MonitorFila(context.Background())
		assert.NoError(t, err)
		assert.False(t, result.Health.IsHealthy)
		alert.AssertNumberOfCalls(t, "Notify", 1)
	})

	t.Run("Testcase #8: Negative, fila principal ausente nao mascara dead letter acumulada", func(t *testing.T) {
		messageQueue := &mockqueue.MessageQueue{}
		messageQueue.On("DeadLetterName", queueName).Return(dlqName)
		messageQueue.On("Metrics", mock.Anything, queueName).
			Return(queue.Metrics{QueueName: queueName, Exists: false}, nil).Once()
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 50}, nil).Once()
		messageQueue.On("ReceiveBatch", mock.Anything, dlqName, 50).Return([]queue.ReceivedMessage{}, nil)
		messageQueue.On("Metrics", mock.Anything, dlqName).
			Return(queue.Metrics{QueueName: dlqName, Exists: true, ApproximateMessageCount: 50}, nil)

		alert := &mockusecase.AlertNotifier{}
		alert.On("Notify", mock.Anything, mock.Anything).Return(nil)

		uc := newTestUsecase(&mockrepo.Questionario{}, &mockrepo.Resposta{}, messageQueue, Config{})
		uc.alert = alert

		result, err := uc.MonitorFila(context.Background())
		assert.NoError(t, err)
		assert.False(t, result.Health.IsHealthy)
		assert.Equal(t, domain.HealthStatusUnhealthy, result.Health.Status)
		assert.Len(t, result.Health.Warnings, 1)
	})
}

func TestRespostaUsecaseImplObterResultadoQuestionario(t *testing.T) {
	t.Run("Testcase #1: Positive, percentual calculado sobre o total de respostas", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		respostaRepo := &mockrepo.Resposta{}
		respostaRepo.On("ContarPorQuestionario", mock.Anything, questionarioID).Return(4, nil)
		respostaRepo.On("ContarPorOpcao", mock.Anything, questionarioID).Return(map[uuid.UUID]int{
			opcaoSimID: 3, opcaoNaoID: 1,
		}, nil)

		uc := newTestUsecase(questionarioRepo, respostaRepo, &mockqueue.MessageQueue{}, Config{})

		resultado, err := uc.ObterResultadoQuestionario(context.Background(), questionarioID.String())
		assert.NoError(t, err)
		assert.Equal(t, 4, resultado.TotalRespostas)
		assert.Len(t, resultado.Perguntas, 2)
		assert.Equal(t, 3, resultado.Perguntas[0].Opcoes[0].Quantidade)
		assert.Equal(t, float64(75), resultado.Perguntas[0].Opcoes[0].Percentual)
		assert.Equal(t, float64(25), resultado.Perguntas[0].Opcoes[1].Percentual)
	})

	t.Run("Testcase #2: Positive, questionario sem respostas", func(t *testing.T) {
		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		respostaRepo := &mockrepo.Resposta{}
		respostaRepo.On("ContarPorQuestionario", mock.Anything, questionarioID).Return(0, nil)
		respostaRepo.On("ContarPorOpcao", mock.Anything, questionarioID).Return(map[uuid.UUID]int{}, nil)

		uc := newTestUsecase(questionarioRepo, respostaRepo, &mockqueue.MessageQueue{}, Config{})

		resultado, err := uc.ObterResultadoQuestionario(context.Background(), questionarioID.String())
		assert.NoError(t, err)
		assert.Equal(t, 0, resultado.TotalRespostas)
		assert.Equal(t, float64(0), resultado.Perguntas[0].Opcoes[0].Percentual)
	})
}

func TestRespostaUsecaseImplObterRespostasPorQuestionario(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		stored := shareddomain.Resposta{
			ID: uuid.New(), QuestionarioID: questionarioID, DataResposta: fixedNow,
			Estado: "SP", Origem: shareddomain.OrigemResposta{Hash: "abc123"},
			Itens: []shareddomain.RespostaItem{
				{ID: uuid.New(), PerguntaID: perguntaUmID, OpcaoRespostaID: opcaoSimID},
			},
		}

		questionarioRepo := &mockrepo.Questionario{}
		questionarioRepo.On("ObterPorIDComPerguntas", mock.Anything, questionarioID).Return(questionarioPublicado(), nil)

		respostaRepo := &mockrepo.Resposta{}
		respostaRepo.On("ObterPorQuestionario", mock.Anything, questionarioID).Return([]shareddomain.Resposta{stored}, nil)

		uc := newTestUsecase(questionarioRepo, respostaRepo, &mockqueue.MessageQueue{}, Config{})

		detalhes, err := uc.ObterRespostasPorQuestionario(context.Background(), questionarioID.String())
		assert.NoError(t, err)
		assert.Len(t, detalhes, 1)
		assert.Equal(t, "abc123", detalhes[0].OrigemHash)
		assert.Len(t, detalhes[0].Itens, 1)
	})

	t.Run("Testcase #2: Negative, id invalido", func(t *testing.T) {
		uc := newTestUsecase(&mockrepo.Questionario{}, &mockrepo.Resposta{}, &mockqueue.MessageQueue{}, Config{})

		_, err := uc.ObterRespostasPorQuestionario(context.Background(), "not-an-uuid")
		assert.Equal(t, shareddomain.ErrKindValidation, shareddomain.KindOf(err))
	})
}
