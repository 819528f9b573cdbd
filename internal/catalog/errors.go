package catalog

import "errors"

// Erros de configuração do catálogo. Todos são fatais na inicialização.
var (
	ErrEmptyDefinition     = errors.New("definição de catálogo vazia")
	ErrInvalidDefinition   = errors.New("definição de catálogo inválida")
	ErrEmptyIntentName     = errors.New("intent sem nome")
	ErrDuplicateIntent     = errors.New("intent duplicada")
	ErrInvalidThreshold    = errors.New("threshold deve ser maior ou igual a 1")
	ErrNoResponses         = errors.New("intent sem respostas")
	ErrEmptyResponse       = errors.New("resposta vazia")
	ErrNoFallbackResponses = errors.New("catálogo sem respostas de fallback")
	ErrInvalidPattern      = errors.New("padrão inválido")
	ErrInvalidSynonyms     = errors.New("tabela de sinônimos inválida")
)
