package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrorKind classify domain and pipeline error for propagation policy
type ErrorKind string

const (
	// ErrKindValidation malformed or incomplete request, caller visible
	ErrKindValidation ErrorKind = "validation"
	// ErrKindNotFound unknown questionario
	ErrKindNotFound ErrorKind = "not_found"
	// ErrKindClosedQuestionario questionario outside collection period or not published
	ErrKindClosedQuestionario ErrorKind = "closed_questionario"
	// ErrKindIncompleteResposta mandatory pergunta uncovered
	ErrKindIncompleteResposta ErrorKind = "incomplete_resposta"
	// ErrKindTransport queue transport unreachable after bounded reconnect
	ErrKindTransport ErrorKind = "transport"
	// ErrKindPersistence worker side storage failure, never surfaced to submitter
	ErrKindPersistence ErrorKind = "persistence"
	// ErrKindReprocess per dead letter message failure, isolated per message
	ErrKindReprocess ErrorKind = "reprocess"
)

// Error domain error with kind for boundary propagation
type Error struct {
	Kind    ErrorKind
	Message string

	// MissingPerguntas filled only for incomplete resposta error
	MissingPerguntas []uuid.UUID

	cause error
}

// Error implement error
func (e *Error) Error() string {
	if len(e.MissingPerguntas) > 0 {
		ids := make([]string, len(e.MissingPerguntas))
		for i, id := range e.MissingPerguntas {
			ids[i] = id.String()
		}
		return fmt.Sprintf("%s: pergunta obrigatoria sem resposta: %s", e.Message, strings.Join(ids, ", "))
	}
	return e.Message
}

// Unwrap return wrapped cause
func (e *Error) Unwrap() error {
	return e.cause
}

// NewValidationError constructor
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrKindValidation, Message: message}
}

// NewNotFoundError constructor
func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrKindNotFound, Message: message}
}

// NewClosedQuestionarioError constructor
func NewClosedQuestionarioError(message string) *Error {
	return &Error{Kind: ErrKindClosedQuestionario, Message: message}
}

// NewIncompleteRespostaError constructor, missing contains uncovered mandatory pergunta ids
func NewIncompleteRespostaError(missing []uuid.UUID) *Error {
	return &Error{
		Kind:             ErrKindIncompleteResposta,
		Message:          "resposta incompleta",
		MissingPerguntas: missing,
	}
}

// NewTransportError wrap transport failure
func NewTransportError(err error) *Error {
	return &Error{Kind: ErrKindTransport, Message: "falha ao enviar mensagem para fila", cause: err}
}

// NewPersistenceError wrap storage failure in worker consumer
func NewPersistenceError(err error) *Error {
	return &Error{Kind: ErrKindPersistence, Message: "falha ao persistir resposta", cause: err}
}

// NewReprocessError wrap per message reprocess failure
func NewReprocessError(err error) *Error {
	return &Error{Kind: ErrKindReprocess, Message: "falha ao reprocessar mensagem da dead letter", cause: err}
}

// KindOf extract error kind, empty when err is not a domain error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
