package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func buildQuestionario(status StatusQuestionario, inicio, fim time.Time) *Questionario {
	qID := uuid.New()
	p1 := Pergunta{ID: uuid.New(), QuestionarioID: qID, Texto: "Pergunta 1", Ordem: 0, Obrigatoria: true}
	p2 := Pergunta{ID: uuid.New(), QuestionarioID: qID, Texto: "Pergunta 2", Ordem: 1, Obrigatoria: true}
	p3 := Pergunta{ID: uuid.New(), QuestionarioID: qID, Texto: "Pergunta 3", Ordem: 2, Obrigatoria: false}
	return &Questionario{
		ID:        qID,
		Titulo:    "Pesquisa",
		Status:    status,
		Periodo:   PeriodoColeta{DataInicio: inicio, DataFim: fim},
		Perguntas: []Pergunta{p1, p2, p3},
	}
}

func TestNewOrigemResposta(t *testing.T) {
	t.Run("Testcase #1: deterministic for same inputs", func(t *testing.T) {
		a, err := NewOrigemResposta("10.0.0.1", "Mozilla/5.0")
		assert.NoError(t, err)
		b, err := NewOrigemResposta("10.0.0.1", "Mozilla/5.0")
		assert.NoError(t, err)
		assert.Equal(t, a.Hash, b.Hash)
		assert.True(t, a.Equals(b))
		assert.Len(t, a.Hash, 64)
	})

	t.Run("Testcase #2: distinct inputs yield distinct fingerprint", func(t *testing.T) {
		a, _ := NewOrigemResposta("10.0.0.1", "Mozilla/5.0")
		b, _ := NewOrigemResposta("10.0.0.2", "Mozilla/5.0")
		c, _ := NewOrigemResposta("10.0.0.1", "curl/8.0")
		assert.NotEqual(t, a.Hash, b.Hash)
		assert.NotEqual(t, a.Hash, c.Hash)
	})

	t.Run("Testcase #3: empty inputs rejected", func(t *testing.T) {
		_, err := NewOrigemResposta("", "Mozilla/5.0")
		assert.Error(t, err)
		_, err = NewOrigemResposta("10.0.0.1", "")
		assert.Error(t, err)
	})
}

func TestGarantirCompletude(t *testing.T) {
	now := time.Now()
	q := buildQuestionario(StatusPublicado, now.Add(-time.Hour), now.Add(time.Hour))
	origem, _ := NewOrigemResposta("10.0.0.1", "Mozilla/5.0")

	newResposta := func() *Resposta {
		r, err := NovaResposta(q.ID, origem, "SP", "Sao Paulo", "Sudeste", now)
		assert.NoError(t, err)
		return r
	}

	t.Run("Testcase #1: all mandatory perguntas covered exactly once", func(t *testing.T) {
		r := newResposta()
		assert.NoError(t, r.AdicionarItem(q.Perguntas[0].ID, uuid.New()))
		assert.NoError(t, r.AdicionarItem(q.Perguntas[1].ID, uuid.New()))

		assert.NoError(t, r.GarantirCompletude(q.Perguntas))
	})

	t.Run("Testcase #2: missing mandatory pergunta named in error", func(t *testing.T) {
		r := newResposta()
		assert.NoError(t, r.AdicionarItem(q.Perguntas[0].ID, uuid.New()))

		err := r.GarantirCompletude(q.Perguntas)
		assert.Error(t, err)
		assert.Equal(t, ErrKindIncompleteResposta, KindOf(err))

		domainErr := err.(*Error)
		assert.Equal(t, []uuid.UUID{q.Perguntas[1].ID}, domainErr.MissingPerguntas)
		assert.Contains(t, err.Error(), q.Perguntas[1].ID.String())
	})

	t.Run("Testcase #3: item referencing pergunta outside questionario", func(t *testing.T) {
		r := newResposta()
		assert.NoError(t, r.AdicionarItem(q.Perguntas[0].ID, uuid.New()))
		assert.NoError(t, r.AdicionarItem(q.Perguntas[1].ID, uuid.New()))
		assert.NoError(t, r.AdicionarItem(uuid.New(), uuid.New()))

		err := r.GarantirCompletude(q.Perguntas)
		assert.Error(t, err)
		assert.Equal(t, ErrKindValidation, KindOf(err))
	})

	t.Run("Testcase #4: duplicated item for mandatory pergunta rejected", func(t *testing.T) {
		r := newResposta()
		assert.NoError(t, r.AdicionarItem(q.Perguntas[0].ID, uuid.New()))
		assert.NoError(t, r.AdicionarItem(q.Perguntas[0].ID, uuid.New()))
		assert.NoError(t, r.AdicionarItem(q.Perguntas[1].ID, uuid.New()))

		err := r.GarantirCompletude(q.Perguntas)
		assert.Error(t, err)
		assert.Equal(t, ErrKindValidation, KindOf(err))
	})

	t.Run("Testcase #5: non mandatory pergunta imposes no requirement", func(t *testing.T) {
		r := newResposta()
		assert.NoError(t, r.AdicionarItem(q.Perguntas[0].ID, uuid.New()))
		assert.NoError(t, r.AdicionarItem(q.Perguntas[1].ID, uuid.New()))
		assert.NoError(t, r.AdicionarItem(q.Perguntas[2].ID, uuid.New()))

		assert.NoError(t, r.GarantirCompletude(q.Perguntas))
	})
}

func TestPodeReceberRespostas(t *testing.T) {
	now := time.Now()

	t.Run("Testcase #1: published inside collection period", func(t *testing.T) {
		q := buildQuestionario(StatusPublicado, now.Add(-time.Hour), now.Add(time.Hour))
		assert.NoError(t, q.PodeReceberRespostas(now))
	})

	t.Run("Testcase #2: collection period already ended", func(t *testing.T) {
		q := buildQuestionario(StatusPublicado, now.Add(-2*time.Hour), now.Add(-time.Hour))
		err := q.PodeReceberRespostas(now)
		assert.Error(t, err)
		assert.Equal(t, ErrKindClosedQuestionario, KindOf(err))
	})

	t.Run("Testcase #3: collection period not started yet", func(t *testing.T) {
		q := buildQuestionario(StatusPublicado, now.Add(time.Hour), now.Add(2*time.Hour))
		err := q.PodeReceberRespostas(now)
		assert.Error(t, err)
		assert.Equal(t, ErrKindClosedQuestionario, KindOf(err))
	})

	t.Run("Testcase #4: not published", func(t *testing.T) {
		q := buildQuestionario(StatusRascunho, now.Add(-time.Hour), now.Add(time.Hour))
		err := q.PodeReceberRespostas(now)
		assert.Error(t, err)
		assert.Equal(t, ErrKindClosedQuestionario, KindOf(err))
	})
}

func TestNewPeriodoColeta(t *testing.T) {
	now := time.Now()
	_, err := NewPeriodoColeta(now, now.Add(time.Hour))
	assert.NoError(t, err)

	_, err = NewPeriodoColeta(now.Add(time.Hour), now)
	assert.Error(t, err)

	_, err = NewPeriodoColeta(now, now)
	assert.Error(t, err)
}
