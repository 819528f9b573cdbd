package intent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
	"github.com/regimeproprio/app-chatbot-rpps/internal/synonyms"
)

type identityStemmer struct{}

func (identityStemmer) Stem(word string) string { return word }

type fixedRandom struct {
	index int
	calls []int
}

func (f *fixedRandom) IntN(n int) int {
	f.calls = append(f.calls, n)
	return f.index
}

func buildCatalog(t *testing.T, groups []synonyms.Group, intents ...catalog.IntentDefinition) *catalog.Catalog {
	t.Helper()
	table, err := synonyms.NewTable(groups)
	require.NoError(t, err)

	cat, err := catalog.NewCompiler(table).Compile(&catalog.Definition{
		Intents:           intents,
		FallbackResponses: []string{"Desculpe, não entendi."},
	})
	require.NoError(t, err)
	return cat
}

func patterns(exprs ...string) []catalog.PatternTemplate {
	out := make([]catalog.PatternTemplate, len(exprs))
	for i, e := range exprs {
		out[i] = catalog.PatternTemplate{Expr: e}
	}
	return out
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load("")
	require.NoError(t, err)
	return cat
}
