package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/golangid/questionario-service/internal/modules/resposta/domain"
	"github.com/golangid/questionario-service/pkg/logger"
	shareddomain "github.com/golangid/questionario-service/pkg/shared/domain"
)

func (u *respostaUsecaseImpl) ProcessarResposta(ctx context.Context, message []byte) error {

	var payload domain.RespostaParaProcessamento
	if err := json.Unmarshal(message, &payload); err != nil {
		return u.descartarMensagem("mensagem de resposta malformada: " + err.Error())
	}

	questionarioID, err := uuid.Parse(payload.QuestionarioID)
	if err != nil {
		return u.descartarMensagem("questionarioId invalido na mensagem: " + payload.QuestionarioID)
	}

	questionario, err := u.questionarioRepo.ObterPorIDComPerguntas(ctx, questionarioID)
	if err != nil {
		if shareddomain.KindOf(err) == shareddomain.ErrKindNotFound {
			return u.descartarMensagem("questionario " + payload.QuestionarioID + " nao encontrado")
		}
		return shareddomain.NewPersistenceError(err)
	}

	origem, err := shareddomain.NewOrigemResposta(payload.IPAddress, payload.UserAgent)
	if err != nil {
		return u.descartarMensagem(err.Error())
	}

	if u.cfg.RejeitarRespostaDuplicada {
		exists, err := u.respostaRepo.JaRespondeu(ctx, questionarioID, origem)
		if err != nil {
			return shareddomain.NewPersistenceError(err)
		}
		if exists {
			// redelivery of an already persisted resposta, drop silently
			logger.LogIf("resposta duplicada descartada, questionario %s", payload.QuestionarioID)
			return nil
		}
	}

	resposta, err := shareddomain.NovaResposta(questionarioID, origem,
		payload.Estado, payload.Cidade, payload.RegiaoGeografica, u.timeNow().UTC())
	if err != nil {
		return u.descartarMensagem(err.Error())
	}
	for _, item := range payload.Respostas {
		perguntaID, err := uuid.Parse(item.PerguntaID)
		if err != nil {
			return u.descartarMensagem("perguntaId invalido na mensagem: " + item.PerguntaID)
		}
		opcaoID, err := uuid.Parse(item.OpcaoRespostaID)
		if err != nil {
			return u.descartarMensagem("opcaoRespostaId invalido na mensagem: " + item.OpcaoRespostaID)
		}
		if err := resposta.AdicionarItem(perguntaID, opcaoID); err != nil {
			return u.descartarMensagem(err.Error())
		}
	}

	// the ingestion side already validated completeness, run it again so a
	// questionario edited between enqueue and consume cannot corrupt results
	if err := resposta.GarantirCompletude(questionario.Perguntas); err != nil {
		return u.descartarMensagem(err.Error())
	}

	if err := u.respostaRepo.Adicionar(ctx, resposta); err != nil {
		return shareddomain.NewPersistenceError(fmt.Errorf("questionario %s: %w", payload.QuestionarioID, err))
	}

	logger.LogIf("resposta %s persistida para questionario %s", resposta.ID, payload.QuestionarioID)
	return nil
}

// descartarMensagem drops a message that cannot be fixed by redelivery, the
// nil return makes the consumer acknowledge it so it never reaches the dead
// letter queue. Only transient failures, storage and the like, propagate an
// error and stay on the queue for retry.
func (u *respostaUsecaseImpl) descartarMensagem(reason string) error {
	logger.LogEf("mensagem de resposta descartada: %s", reason)
	return nil
}
