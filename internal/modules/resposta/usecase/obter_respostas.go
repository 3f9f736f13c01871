package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/golangid/questionario-service/internal/modules/resposta/domain"
	shareddomain "github.com/golangid/questionario-service/pkg/shared/domain"
)

func (u *respostaUsecaseImpl) ObterRespostasPorQuestionario(ctx context.Context, questionarioID string) ([]domain.RespostaDetalhe, error) {

	id, err := uuid.Parse(questionarioID)
	if err != nil {
		return nil, shareddomain.NewValidationError("questionarioId invalido")
	}
	if _, err := u.questionarioRepo.ObterPorIDComPerguntas(ctx, id); err != nil {
		return nil, err
	}

	respostas, err := u.respostaRepo.ObterPorQuestionario(ctx, id)
	if err != nil {
		return nil, err
	}

	detalhes := make([]domain.RespostaDetalhe, 0, len(respostas))
	for _, resposta := range respostas {
		detalhe := domain.RespostaDetalhe{
			ID:               resposta.ID.String(),
			QuestionarioID:   resposta.QuestionarioID.String(),
			DataResposta:     resposta.DataResposta,
			Estado:           resposta.Estado,
			Cidade:           resposta.Cidade,
			RegiaoGeografica: resposta.RegiaoGeografica,
			OrigemHash:       resposta.Origem.Hash,
		}
		for _, item := range resposta.Itens {
			detalhe.Itens = append(detalhe.Itens, domain.RespostaItemPayload{
				PerguntaID:      item.PerguntaID.String(),
				OpcaoRespostaID: item.OpcaoRespostaID.String(),
			})
		}
		detalhes = append(detalhes, detalhe)
	}
	return detalhes, nil
}

func (u *respostaUsecaseImpl) ObterResultadoQuestionario(ctx context.Context, questionarioID string) (*domain.ResultadoQuestionario, error) {

	id, err := uuid.Parse(questionarioID)
	if err != nil {
		return nil, shareddomain.NewValidationError("questionarioId invalido")
	}
	questionario, err := u.questionarioRepo.ObterPorIDComPerguntas(ctx, id)
	if err != nil {
		return nil, err
	}

	total, err := u.respostaRepo.ContarPorQuestionario(ctx, id)
	if err != nil {
		return nil, err
	}
	countsPerOpcao, err := u.respostaRepo.ContarPorOpcao(ctx, id)
	if err != nil {
		return nil, err
	}

	resultado := &domain.ResultadoQuestionario{
		QuestionarioID: questionario.ID.String(),
		Titulo:         questionario.Titulo,
		TotalRespostas: total,
	}
	for _, pergunta := range questionario.Perguntas {
		resultadoPergunta := domain.ResultadoPergunta{
			PerguntaID: pergunta.ID.String(),
			Texto:      pergunta.Texto,
			Ordem:      pergunta.Ordem,
		}
		for _, opcao := range pergunta.Opcoes {
			quantidade := countsPerOpcao[opcao.ID]
			var percentual float64
			if total > 0 {
				percentual = float64(quantidade) * 100 / float64(total)
			}
			resultadoPergunta.Opcoes = append(resultadoPergunta.Opcoes, domain.ResultadoOpcao{
				OpcaoRespostaID: opcao.ID.String(),
				Texto:           opcao.Texto,
				Ordem:           opcao.Ordem,
				Quantidade:      quantidade,
				Percentual:      percentual,
			})
		}
		resultado.Perguntas = append(resultado.Perguntas, resultadoPergunta)
	}
	return resultado, nil
}
