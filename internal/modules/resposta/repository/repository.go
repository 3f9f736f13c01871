package repository

import (
	"database/sql"

	"github.com/golangid/questionario-service/internal/modules/resposta/repository/interfaces"
	"github.com/golangid/questionario-service/internal/modules/resposta/repository/postgres"
)

// Repository registry of all repositories owned by the resposta module
type Repository struct {
	Questionario interfaces.Questionario
	Resposta     interfaces.Resposta
}

// NewRepository create new repository registry backed by postgres
func NewRepository(readDB, writeDB *sql.DB) *Repository {
	return &Repository{
		Questionario: postgres.NewQuestionarioRepo(readDB),
		Resposta:     postgres.NewRespostaRepo(readDB, writeDB),
	}
}
