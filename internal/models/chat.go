package models

import "errors"

var (
	ErrMessageTooLong = errors.New("mensagem excede o tamanho máximo")
	ErrInvalidFormat  = errors.New("formato inválido (use: text, html)")
)

// ReplyFormat define como a resposta é entregue
type ReplyFormat string

const (
	FormatText ReplyFormat = "text"
	FormatHTML ReplyFormat = "html"
)

// ChatRequest representa uma mensagem enviada ao chatbot
// @Description Mensagem livre do usuário. Mensagem vazia recebe a resposta genérica.
type ChatRequest struct {
	// Texto digitado pelo usuário
	Message string `json:"message" validate:"message_length" example:"como funciona o ecac"`
	// Formato da resposta: text (default) ou html
	Format ReplyFormat `json:"format,omitempty" validate:"omitempty,oneof=text html" example:"text" enums:"text,html"`
	// Inclui camada, intent e pontuação na resposta
	Explain bool `json:"explain,omitempty" example:"false"`
}

// ChatResponse representa a resposta do chatbot
type ChatResponse struct {
	ID      string `json:"id" example:"5b1f0c9e-3f53-4b8e-9d0e-2a6c1f0e7d11"`
	Reply   string `json:"reply" example:"O ECAC é o Centro Virtual de Atendimento e Comunicação do DRPPS."`
	HTML    string `json:"html,omitempty"`
	Intent  string `json:"intent,omitempty" example:"funcionamento_ecac"`
	Matched bool   `json:"matched" example:"true"`

	Explanation *Explanation `json:"explanation,omitempty"`
}

// Explanation detalha como a intent foi escolhida
type Explanation struct {
	Layer      string  `json:"layer" example:"pattern" enums:"pattern,similarity,semantic,fallback"`
	Score      int     `json:"score" example:"2"`
	Similarity float64 `json:"similarity,omitempty" example:"0"`
	Normalized string  `json:"normalized" example:"como funciona o ecac"`
	Stemmed    string  `json:"stemmed" example:"como funciona o ecac"`
}

// IntentSummary resume uma intent do catálogo
type IntentSummary struct {
	Name      string `json:"name" example:"funcionamento_ecac"`
	Threshold int    `json:"threshold" example:"2"`
	Patterns  int    `json:"patterns" example:"3"`
	Responses int    `json:"responses" example:"2"`
	Reachable bool   `json:"reachable" example:"true"`
}

// IntentsResponse lista as intents do catálogo
type IntentsResponse struct {
	Total       int             `json:"total" example:"62"`
	Unreachable int             `json:"unreachable" example:"0"`
	Intents     []IntentSummary `json:"intents"`
}

// ErrorResponse é o corpo padrão de erro da API
type ErrorResponse struct {
	Error string `json:"error" example:"Dados inválidos"`
}

// CacheStatsResponse descreve o cache de decisões do motor
type CacheStatsResponse struct {
	Enabled bool `json:"enabled" example:"true"`
	Size    int  `json:"size" example:"120"`
	Expired int  `json:"expired" example:"3"`
}
