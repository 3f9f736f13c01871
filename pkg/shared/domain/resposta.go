package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

// OrigemResposta one way deterministic fingerprint of submitter origin.
// Equality is by hash value, raw ip and user agent are never stored.
type OrigemResposta struct {
	Hash string
}

// NewOrigemResposta derive fingerprint from raw ip address and user agent
func NewOrigemResposta(ipAddress, userAgent string) (OrigemResposta, error) {
	if ipAddress == "" {
		return OrigemResposta{}, errors.New("ip nao pode ser vazio")
	}
	if userAgent == "" {
		return OrigemResposta{}, errors.New("user agent nao pode ser vazio")
	}

	sum := sha256.Sum256([]byte(ipAddress + "|" + userAgent))
	return OrigemResposta{Hash: hex.EncodeToString(sum[:])}, nil
}

// Equals compare by hash value
func (o OrigemResposta) Equals(other OrigemResposta) bool {
	return o.Hash == other.Hash
}

// RespostaItem one answer, a pergunta and chosen opcao pair
type RespostaItem struct {
	ID              uuid.UUID
	RespostaID      uuid.UUID
	PerguntaID      uuid.UUID
	OpcaoRespostaID uuid.UUID
}

// Resposta one submitter's complete set of answers to a questionario
type Resposta struct {
	ID               uuid.UUID
	QuestionarioID   uuid.UUID
	DataResposta     time.Time
	Estado           string
	Cidade           string
	RegiaoGeografica string
	Origem           OrigemResposta
	Itens            []RespostaItem
}

// NovaResposta build resposta aggregate with fresh identity
func NovaResposta(questionarioID uuid.UUID, origem OrigemResposta, estado, cidade, regiaoGeografica string, agora time.Time) (*Resposta, error) {
	if questionarioID == uuid.Nil {
		return nil, errors.New("questionario invalido")
	}

	return &Resposta{
		ID:               uuid.New(),
		QuestionarioID:   questionarioID,
		DataResposta:     agora,
		Estado:           estado,
		Cidade:           cidade,
		RegiaoGeografica: regiaoGeografica,
		Origem:           origem,
	}, nil
}

// AdicionarItem attach one answer to the resposta
func (r *Resposta) AdicionarItem(perguntaID, opcaoRespostaID uuid.UUID) error {
	if perguntaID == uuid.Nil {
		return errors.New("pergunta invalida")
	}
	if opcaoRespostaID == uuid.Nil {
		return errors.New("opcao de resposta invalida")
	}

	r.Itens = append(r.Itens, RespostaItem{
		ID:              uuid.New(),
		RespostaID:      r.ID,
		PerguntaID:      perguntaID,
		OpcaoRespostaID: opcaoRespostaID,
	})
	return nil
}

// GarantirCompletude completeness rule: every mandatory pergunta must be
// covered by exactly one item, items referencing a pergunta outside the
// questionario are invalid. Runs purely in memory.
func (r *Resposta) GarantirCompletude(perguntas []Pergunta) error {
	known := make(map[uuid.UUID]bool, len(perguntas))
	for _, p := range perguntas {
		known[p.ID] = true
	}

	answered := make(map[uuid.UUID]int, len(r.Itens))
	for _, item := range r.Itens {
		if !known[item.PerguntaID] {
			return NewValidationError("item referencia pergunta fora do questionario: " + item.PerguntaID.String())
		}
		answered[item.PerguntaID]++
	}

	var missing []uuid.UUID
	for _, p := range perguntas {
		if !p.Obrigatoria {
			continue
		}
		switch answered[p.ID] {
		case 0:
			missing = append(missing, p.ID)
		case 1:
			// covered exactly once
		default:
			return NewValidationError("pergunta respondida mais de uma vez: " + p.ID.String())
		}
	}

	if len(missing) > 0 {
		return NewIncompleteRespostaError(missing)
	}
	return nil
}
