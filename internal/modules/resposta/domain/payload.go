package domain

import (
	"time"
)

// RespostaItemPayload one pergunta and chosen opcao pair in wire format
type RespostaItemPayload struct {
	PerguntaID      string `json:"perguntaId" validate:"required,uuid"`
	OpcaoRespostaID string `json:"opcaoRespostaId" validate:"required,uuid"`
}

// RegistrarRespostaRequest model, submitted by the public collection form.
// IPAddress and UserAgent are captured from the transport layer, never from
// the request body.
type RegistrarRespostaRequest struct {
	QuestionarioID   string                `json:"questionarioId" validate:"required,uuid"`
	Respostas        []RespostaItemPayload `json:"respostas" validate:"required,min=1,dive"`
	Estado           string                `json:"estado" validate:"omitempty,max=100"`
	Cidade           string                `json:"cidade" validate:"omitempty,max=100"`
	RegiaoGeografica string                `json:"regiaoGeografica" validate:"omitempty,max=100"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// RespostaRegistrada provisional receipt, acceptance for processing only,
// not confirmation of persistence
type RespostaRegistrada struct {
	ReceiptID      string    `json:"receiptId"`
	QuestionarioID string    `json:"questionarioId"`
	AcceptedAtUTC  time.Time `json:"acceptedAtUtc"`
}

// RespostaParaProcessamento queue message schema shared by producer,
// consumer and dead letter reprocessing
type RespostaParaProcessamento struct {
	QuestionarioID   string                `json:"questionarioId"`
	Respostas        []RespostaItemPayload `json:"respostas"`
	IPAddress        string                `json:"ipAddress"`
	UserAgent        string                `json:"userAgent"`
	Estado           string                `json:"estado"`
	Cidade           string                `json:"cidade"`
	RegiaoGeografica string                `json:"regiaoGeografica"`
}

// RespostaDetalhe read model of one stored resposta, origin fingerprint only
type RespostaDetalhe struct {
	ID               string                `json:"id"`
	QuestionarioID   string                `json:"questionarioId"`
	DataResposta     time.Time             `json:"dataResposta"`
	Estado           string                `json:"estado,omitempty"`
	Cidade           string                `json:"cidade,omitempty"`
	RegiaoGeografica string                `json:"regiaoGeografica,omitempty"`
	OrigemHash       string                `json:"origemHash"`
	Itens            []RespostaItemPayload `json:"itens"`
}
