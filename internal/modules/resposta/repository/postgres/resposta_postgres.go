package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	shareddomain "github.com/golangid/questionario-service/pkg/shared/domain"
)

// RespostaPostgresRepo repo
type RespostaPostgresRepo struct {
	readDB, writeDB *sql.DB
}

// NewRespostaRepo create new resposta repository
func NewRespostaRepo(readDB, writeDB *sql.DB) *RespostaPostgresRepo {
	return &RespostaPostgresRepo{readDB: readDB, writeDB: writeDB}
}

func (r *RespostaPostgresRepo) Adicionar(ctx context.Context, resposta *shareddomain.Resposta) (err error) {

	tx, err := r.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	_, err = tx.ExecContext(ctx, `INSERT INTO respostas
			(id, questionario_id, data_resposta, estado, cidade, regiao_geografica, origem_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		resposta.ID, resposta.QuestionarioID, resposta.DataResposta,
		nullable(resposta.Estado), nullable(resposta.Cidade), nullable(resposta.RegiaoGeografica),
		resposta.Origem.Hash)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO resposta_itens
			(id, resposta_id, pergunta_id, opcao_resposta_id)
		VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range resposta.Itens {
		if _, err = stmt.ExecContext(ctx, item.ID, item.RespostaID, item.PerguntaID, item.OpcaoRespostaID); err != nil {
			return err
		}
	}
	return nil
}

func (r *RespostaPostgresRepo) ContarPorQuestionario(ctx context.Context, questionarioID uuid.UUID) (count int, err error) {
	err = r.readDB.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM respostas WHERE questionario_id = $1`, questionarioID).Scan(&count)
	return
}

func (r *RespostaPostgresRepo) JaRespondeu(ctx context.Context, questionarioID uuid.UUID, origem shareddomain.OrigemResposta) (exists bool, err error) {
	err = r.readDB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM respostas WHERE questionario_id = $1 AND origem_hash = $2)`,
		questionarioID, origem.Hash).Scan(&exists)
	return
}

func (r *RespostaPostgresRepo) ObterPorQuestionario(ctx context.Context, questionarioID uuid.UUID) ([]shareddomain.Resposta, error) {

	rows, err := r.readDB.QueryContext(ctx, `SELECT r.id, r.questionario_id, r.data_resposta,
			COALESCE(r.estado, ''), COALESCE(r.cidade, ''), COALESCE(r.regiao_geografica, ''), r.origem_hash,
			i.id, i.pergunta_id, i.opcao_resposta_id
		FROM respostas r
		JOIN resposta_itens i ON i.resposta_id = r.id
		WHERE r.questionario_id = $1
		ORDER BY r.data_resposta, r.id`, questionarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var respostas []shareddomain.Resposta
	respostaIndex := make(map[uuid.UUID]int)
	for rows.Next() {
		var resposta shareddomain.Resposta
		var item shareddomain.RespostaItem
		if err := rows.Scan(&resposta.ID, &resposta.QuestionarioID, &resposta.DataResposta,
			&resposta.Estado, &resposta.Cidade, &resposta.RegiaoGeografica, &resposta.Origem.Hash,
			&item.ID, &item.PerguntaID, &item.OpcaoRespostaID); err != nil {
			return nil, err
		}

		idx, ok := respostaIndex[resposta.ID]
		if !ok {
			idx = len(respostas)
			respostaIndex[resposta.ID] = idx
			respostas = append(respostas, resposta)
		}
		item.RespostaID = resposta.ID
		respostas[idx].Itens = append(respostas[idx].Itens, item)
	}
	return respostas, rows.Err()
}

func (r *RespostaPostgresRepo) ContarPorOpcao(ctx context.Context, questionarioID uuid.UUID) (map[uuid.UUID]int, error) {

	rows, err := r.readDB.QueryContext(ctx, `SELECT i.opcao_resposta_id, COUNT(1)
		FROM resposta_itens i
		JOIN respostas r ON r.id = i.resposta_id
		WHERE r.questionario_id = $1
		GROUP BY i.opcao_resposta_id`, questionarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var opcaoID uuid.UUID
		var count int
		if err := rows.Scan(&opcaoID, &count); err != nil {
			return nil, err
		}
		counts[opcaoID] = count
	}
	return counts, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
