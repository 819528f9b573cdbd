// Package text reúne as transformações de texto usadas pelo motor de intents:
// normalização, remoção de acentos, stemming e similaridade de strings.
package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWordRegex    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// FoldAccents remove acentos e diacríticos preservando o restante do texto
// Exemplo: "Previdência" -> "Previdencia", "ção" -> "cao"
func FoldAccents(s string) string {
	if s == "" {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Normalize converte o texto para a forma canônica usada no matching:
// minúsculo, sem acentos, sem pontuação e com espaços simples.
// Exemplo: "Olá, tudo bem?!" -> "ola tudo bem"
func Normalize(s string) string {
	if s == "" {
		return s
	}

	s = strings.ToLower(s)
	s = FoldAccents(s)

	// \w é ASCII: qualquer caractere fora de [0-9A-Za-z_] vira espaço
	s = nonWordRegex.ReplaceAllString(s, " ")
	s = whitespaceRegex.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
