package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// StatusQuestionario lifecycle status
type StatusQuestionario string

const (
	// StatusRascunho questionario under construction, not accepting respostas
	StatusRascunho StatusQuestionario = "rascunho"
	// StatusPublicado questionario published, accepting respostas inside collection period
	StatusPublicado StatusQuestionario = "publicado"
	// StatusEncerrado questionario closed by owner
	StatusEncerrado StatusQuestionario = "encerrado"
)

// PeriodoColeta collection period value object
type PeriodoColeta struct {
	DataInicio time.Time
	DataFim    time.Time
}

// NewPeriodoColeta constructor, inicio must precede fim
func NewPeriodoColeta(inicio, fim time.Time) (PeriodoColeta, error) {
	if !inicio.Before(fim) {
		return PeriodoColeta{}, errors.New("data de inicio deve ser anterior a data de termino")
	}
	return PeriodoColeta{DataInicio: inicio, DataFim: fim}, nil
}

// EstaAtivo report whether agora lies inside the collection period
func (p PeriodoColeta) EstaAtivo(agora time.Time) bool {
	return !agora.Before(p.DataInicio) && !agora.After(p.DataFim)
}

// JaIniciou report whether the collection period already started
func (p PeriodoColeta) JaIniciou(agora time.Time) bool {
	return !agora.Before(p.DataInicio)
}

// JaEncerrou report whether the collection period already ended
func (p PeriodoColeta) JaEncerrou(agora time.Time) bool {
	return agora.After(p.DataFim)
}

// OpcaoResposta selectable option of a pergunta
type OpcaoResposta struct {
	ID         uuid.UUID
	PerguntaID uuid.UUID
	Texto      string
	Ordem      int
}

// Pergunta question inside a questionario
type Pergunta struct {
	ID             uuid.UUID
	QuestionarioID uuid.UUID
	Texto          string
	Ordem          int
	Obrigatoria    bool
	Opcoes         []OpcaoResposta
}

// Questionario survey aggregate, read only from the ingestion pipeline point of view
type Questionario struct {
	ID        uuid.UUID
	Titulo    string
	Descricao string
	Status    StatusQuestionario
	Periodo   PeriodoColeta
	Perguntas []Pergunta
}

// PodeReceberRespostas check accepting state and collection period gate
func (q *Questionario) PodeReceberRespostas(agora time.Time) error {
	if q.Status != StatusPublicado {
		return NewClosedQuestionarioError("questionario nao esta publicado")
	}
	if !q.Periodo.JaIniciou(agora) {
		return NewClosedQuestionarioError("periodo de coleta ainda nao iniciou")
	}
	if q.Periodo.JaEncerrou(agora) {
		return NewClosedQuestionarioError("periodo de coleta ja encerrou")
	}
	return nil
}

// PerguntasObrigatorias filter mandatory perguntas
func (q *Questionario) PerguntasObrigatorias() (obrigatorias []Pergunta) {
	for _, p := range q.Perguntas {
		if p.Obrigatoria {
			obrigatorias = append(obrigatorias, p)
		}
	}
	return
}
