package text

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
)

// DefaultStemmerLanguage é a família Porter, a mesma usada pela primeira versão do chatbot
const DefaultStemmerLanguage = "english"

// Stemmer reduz uma palavra normalizada ao seu radical
type Stemmer interface {
	Stem(word string) string
}

// SnowballStemmer implementa Stemmer com os algoritmos Snowball
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer cria um stemmer para o idioma informado.
// Idiomas não suportados pela biblioteca retornam erro.
func NewSnowballStemmer(language string) (*SnowballStemmer, error) {
	if language == "" {
		language = DefaultStemmerLanguage
	}

	if _, err := snowball.Stem("probe", language, true); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedLanguage, language, err)
	}

	return &SnowballStemmer{language: language}, nil
}

// Language retorna o idioma configurado
func (s *SnowballStemmer) Language() string {
	return s.language
}

// Stem retorna o radical da palavra; em caso de erro a palavra volta intacta
func (s *SnowballStemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}

// StemText aplica o stemmer a cada token de um texto já normalizado
func StemText(stemmer Stemmer, normalized string) string {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return ""
	}

	for i, token := range tokens {
		tokens[i] = stemmer.Stem(token)
	}
	return strings.Join(tokens, " ")
}
