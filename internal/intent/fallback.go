package intent

import (
	"context"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
	"github.com/regimeproprio/app-chatbot-rpps/internal/text"
)

// DefaultSimilarityCutoff é o mínimo (exclusivo) para aceitar o fallback por similaridade
const DefaultSimilarityCutoff = 0.6

// SimilarityMatch é o resultado do fallback por similaridade
type SimilarityMatch struct {
	Intent     *catalog.Intent
	Similarity float64
}

// FallbackMatch compara a mensagem normalizada com os identificadores de cada
// intent e retorna a mais parecida se a similaridade passar estritamente do cutoff.
func FallbackMatch(cat *catalog.Catalog, normalized string, cutoff float64) (SimilarityMatch, bool) {
	var best SimilarityMatch

	for _, intent := range cat.Intents() {
		sim := 0.0
		for _, id := range intent.Identifiers() {
			if s := text.Similarity(normalized, id); s > sim {
				sim = s
			}
		}
		if best.Intent == nil || sim > best.Similarity {
			best = SimilarityMatch{Intent: intent, Similarity: sim}
		}
	}

	if best.Intent == nil || best.Similarity <= cutoff {
		return best, false
	}
	return best, true
}

// SemanticFallback é o ponto de extensão para um matching por significado
type SemanticFallback interface {
	Match(ctx context.Context, q Query) (SimilarityMatch, bool)
}

// DisabledSemanticFallback nunca encontra intent
type DisabledSemanticFallback struct{}

func (DisabledSemanticFallback) Match(context.Context, Query) (SimilarityMatch, bool) {
	return SimilarityMatch{}, false
}
