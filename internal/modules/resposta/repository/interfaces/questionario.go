package interfaces

import (
	"context"

	"github.com/google/uuid"

	shareddomain "github.com/golangid/questionario-service/pkg/shared/domain"
)

// Questionario read side repository abstraction
type Questionario interface {
	// ObterPorIDComPerguntas load questionario aggregate with perguntas and
	// opcoes, returns domain not found error when the id is unknown
	ObterPorIDComPerguntas(ctx context.Context, id uuid.UUID) (*shareddomain.Questionario, error)
}
