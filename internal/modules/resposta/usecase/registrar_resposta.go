package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/golangid/questionario-service/internal/modules/resposta/domain"
	"github.com/golangid/questionario-service/pkg/helper"
	shareddomain "github.com/golangid/questionario-service/pkg/shared/domain"
)

func (u *respostaUsecaseImpl) RegistrarResposta(ctx context.Context, req *domain.RegistrarRespostaRequest) (*domain.RespostaRegistrada, error) {

	if err := u.validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.IPAddress == "" || req.UserAgent == "" {
		return nil, shareddomain.NewValidationError("origem da resposta nao identificada")
	}

	questionarioID, err := uuid.Parse(req.QuestionarioID)
	if err != nil {
		return nil, shareddomain.NewValidationError("questionarioId invalido")
	}

	questionario, err := u.questionarioRepo.ObterPorIDComPerguntas(ctx, questionarioID)
	if err != nil {
		return nil, err
	}

	agora := u.timeNow().UTC()
	if err := questionario.PodeReceberRespostas(agora); err != nil {
		return nil, err
	}

	origem, err := shareddomain.NewOrigemResposta(req.IPAddress, req.UserAgent)
	if err != nil {
		return nil, shareddomain.NewValidationError(err.Error())
	}

	if u.cfg.RejeitarRespostaDuplicada {
		exists, err := u.respostaRepo.JaRespondeu(ctx, questionarioID, origem)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shareddomain.NewValidationError("origem ja respondeu este questionario")
		}
	}

	// completeness is checked before the message ever reaches the queue, an
	// accepted submission can only fail later for infrastructure reasons
	resposta, err := shareddomain.NovaResposta(questionarioID, origem, req.Estado, req.Cidade, req.RegiaoGeografica, agora)
	if err != nil {
		return nil, shareddomain.NewValidationError(err.Error())
	}
	for _, item := range req.Respostas {
		perguntaID, err := uuid.Parse(item.PerguntaID)
		if err != nil {
			return nil, shareddomain.NewValidationError("perguntaId invalido: " + item.PerguntaID)
		}
		opcaoID, err := uuid.Parse(item.OpcaoRespostaID)
		if err != nil {
			return nil, shareddomain.NewValidationError("opcaoRespostaId invalido: " + item.OpcaoRespostaID)
		}
		if err := resposta.AdicionarItem(perguntaID, opcaoID); err != nil {
			return nil, shareddomain.NewValidationError(err.Error())
		}
	}
	if err := resposta.GarantirCompletude(questionario.Perguntas); err != nil {
		return nil, err
	}

	message := domain.RespostaParaProcessamento{
		QuestionarioID:   req.QuestionarioID,
		Respostas:        req.Respostas,
		IPAddress:        req.IPAddress,
		UserAgent:        req.UserAgent,
		Estado:           req.Estado,
		Cidade:           req.Cidade,
		RegiaoGeografica: req.RegiaoGeografica,
	}
	if err := u.messageQueue.Send(ctx, u.cfg.QueueRespostasName, helper.ToBytes(message)); err != nil {
		return nil, shareddomain.NewTransportError(err)
	}

	return &domain.RespostaRegistrada{
		ReceiptID:      uuid.New().String(),
		QuestionarioID: req.QuestionarioID,
		AcceptedAtUTC:  agora,
	}, nil
}
