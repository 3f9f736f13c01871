package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	shareddomain "github.com/golangid/questionario-service/pkg/shared/domain"
)

// QuestionarioPostgresRepo repo
type QuestionarioPostgresRepo struct {
	readDB *sql.DB
}

// NewQuestionarioRepo create new questionario repository
func NewQuestionarioRepo(readDB *sql.DB) *QuestionarioPostgresRepo {
	return &QuestionarioPostgresRepo{readDB: readDB}
}

func (r *QuestionarioPostgresRepo) ObterPorIDComPerguntas(ctx context.Context, id uuid.UUID) (*shareddomain.Questionario, error) {

	var questionario shareddomain.Questionario
	err := r.readDB.QueryRowContext(ctx, `SELECT id, titulo, descricao, status, data_inicio, data_fim
		FROM questionarios WHERE id = $1`, id).
		Scan(&questionario.ID, &questionario.Titulo, &questionario.Descricao, &questionario.Status,
			&questionario.Periodo.DataInicio, &questionario.Periodo.DataFim)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shareddomain.NewNotFoundError("questionario nao encontrado: " + id.String())
		}
		return nil, err
	}

	rows, err := r.readDB.QueryContext(ctx, `SELECT p.id, p.questionario_id, p.texto, p.ordem, p.obrigatoria,
			o.id, o.pergunta_id, o.texto, o.ordem
		FROM perguntas p
		JOIN opcoes_resposta o ON o.pergunta_id = p.id
		WHERE p.questionario_id = $1
		ORDER BY p.ordem, o.ordem`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perguntaIndex := make(map[uuid.UUID]int)
	for rows.Next() {
		var pergunta shareddomain.Pergunta
		var opcao shareddomain.OpcaoResposta
		if err := rows.Scan(&pergunta.ID, &pergunta.QuestionarioID, &pergunta.Texto, &pergunta.Ordem, &pergunta.Obrigatoria,
			&opcao.ID, &opcao.PerguntaID, &opcao.Texto, &opcao.Ordem); err != nil {
			return nil, err
		}

		idx, ok := perguntaIndex[pergunta.ID]
		if !ok {
			idx = len(questionario.Perguntas)
			perguntaIndex[pergunta.ID] = idx
			questionario.Perguntas = append(questionario.Perguntas, pergunta)
		}
		questionario.Perguntas[idx].Opcoes = append(questionario.Perguntas[idx].Opcoes, opcao)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &questionario, nil
}
