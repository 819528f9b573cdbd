package synonyms

import "errors"

var (
	ErrEmptyRoot         = errors.New("palavra-chave de sinônimo vazia")
	ErrInvalidRoot       = errors.New("palavra-chave de sinônimo fora da forma normalizada")
	ErrDuplicateRoot     = errors.New("palavra-chave de sinônimo duplicada")
	ErrEmptySynonymGroup = errors.New("grupo de sinônimos sem variantes")
	ErrEmptyVariant      = errors.New("variante de sinônimo vazia após normalização")
)
