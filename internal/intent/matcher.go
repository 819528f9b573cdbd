// Package intent resolve a intent de uma mensagem livre: padrões, fallback
// por similaridade, fallback semântico e escolha da resposta.
package intent

import (
	"sort"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
	"github.com/regimeproprio/app-chatbot-rpps/internal/text"
)

// Query guarda as formas da mensagem usadas no matching
type Query struct {
	Raw        string
	Normalized string
	Stemmed    string
}

// ScoredIntent é uma intent com o número de padrões que casaram
type ScoredIntent struct {
	Intent *catalog.Intent
	Score  int
}

// Matcher pontua as intents do catálogo contra uma mensagem
type Matcher struct {
	catalog *catalog.Catalog
	stemmer text.Stemmer
}

// NewMatcher cria um matcher
func NewMatcher(cat *catalog.Catalog, stemmer text.Stemmer) *Matcher {
	return &Matcher{catalog: cat, stemmer: stemmer}
}

// Prepare normaliza e aplica stemming uma única vez por mensagem
func (m *Matcher) Prepare(raw string) Query {
	normalized := text.Normalize(raw)
	return Query{
		Raw:        raw,
		Normalized: normalized,
		Stemmed:    text.StemText(m.stemmer, normalized),
	}
}

// Scores pontua todas as intents, na ordem do catálogo.
// Cada padrão conta uma vez se casar com a forma normalizada ou com a reduzida.
func (m *Matcher) Scores(q Query) []ScoredIntent {
	intents := m.catalog.Intents()
	scored := make([]ScoredIntent, 0, len(intents))

	for _, intent := range intents {
		score := 0
		for _, p := range intent.Patterns {
			if p.Match(q.Normalized) || (q.Stemmed != q.Normalized && p.Match(q.Stemmed)) {
				score++
			}
		}
		scored = append(scored, ScoredIntent{Intent: intent, Score: score})
	}

	return scored
}

// Score retorna só as intents que atingiram o threshold, na ordem do catálogo
func (m *Matcher) Score(q Query) []ScoredIntent {
	var hits []ScoredIntent
	for _, s := range m.Scores(q) {
		if s.Score >= s.Intent.Threshold {
			hits = append(hits, s)
		}
	}
	return hits
}

// Best escolhe a intent de maior pontuação; empates ficam com a primeira do catálogo
func Best(scored []ScoredIntent) (ScoredIntent, bool) {
	if len(scored) == 0 {
		return ScoredIntent{}, false
	}

	sorted := make([]ScoredIntent, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted[0], true
}
