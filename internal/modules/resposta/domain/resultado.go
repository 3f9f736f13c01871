package domain

// ResultadoOpcao vote count of one opcao inside the aggregated result
type ResultadoOpcao struct {
	OpcaoRespostaID string  `json:"opcaoRespostaId"`
	Texto           string  `json:"texto"`
	Ordem           int     `json:"ordem"`
	Quantidade      int     `json:"quantidade"`
	Percentual      float64 `json:"percentual"`
}

// ResultadoPergunta aggregated result of one pergunta
type ResultadoPergunta struct {
	PerguntaID string           `json:"perguntaId"`
	Texto      string           `json:"texto"`
	Ordem      int              `json:"ordem"`
	Opcoes     []ResultadoOpcao `json:"opcoes"`
}

// ResultadoQuestionario aggregated result of a whole questionario
type ResultadoQuestionario struct {
	QuestionarioID string              `json:"questionarioId"`
	Titulo         string              `json:"titulo"`
	TotalRespostas int                 `json:"totalRespostas"`
	Perguntas      []ResultadoPergunta `json:"perguntas"`
}
