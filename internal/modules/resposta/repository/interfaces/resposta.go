package interfaces

import (
	"context"

	"github.com/google/uuid"

	shareddomain "github.com/golangid/questionario-service/pkg/shared/domain"
)

// Resposta repository abstraction
type Resposta interface {
	// Adicionar persist resposta aggregate with all itens in one transaction
	Adicionar(ctx context.Context, resposta *shareddomain.Resposta) error

	ContarPorQuestionario(ctx context.Context, questionarioID uuid.UUID) (int, error)

	// JaRespondeu report whether an origin fingerprint already answered the questionario
	JaRespondeu(ctx context.Context, questionarioID uuid.UUID, origem shareddomain.OrigemResposta) (bool, error)

	ObterPorQuestionario(ctx context.Context, questionarioID uuid.UUID) ([]shareddomain.Resposta, error)

	// ContarPorOpcao vote count grouped by opcao resposta id
	ContarPorOpcao(ctx context.Context, questionarioID uuid.UUID) (map[uuid.UUID]int, error)
}
