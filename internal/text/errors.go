package text

import "errors"

var (
	ErrUnsupportedLanguage = errors.New("idioma de stemming não suportado")
)
