package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regimeproprio/app-chatbot-rpps/internal/synonyms"
)

func newTestCompiler(t *testing.T, opts ...Option) *Compiler {
	t.Helper()
	table, err := synonyms.NewTable([]synonyms.Group{
		{Root: "ecac", Variants: []string{"ecac", "portal ecac", "centro virtual"}},
		{Root: "portaria", Variants: []string{"portaria", "mte"}},
		{Root: "guia", Variants: []string{"guia", "boleto"}},
	})
	require.NoError(t, err)
	return NewCompiler(table, opts...)
}

func compile(t *testing.T, c *Compiler, expr string) *Pattern {
	t.Helper()
	p, err := c.CompilePattern(PatternTemplate{Expr: expr})
	require.NoError(t, err, expr)
	return p
}

func TestCompilePatternMatch(t *testing.T) {
	c := newTestCompiler(t)

	tests := []struct {
		name    string
		expr    string
		input   string
		matches bool
	}{
		{"pontuação vira espaço", `portaria\s*1\.467\/2022`, "portaria 1 467 2022", true},
		{"sinônimo na pergunta", `portaria\s*1\.467\/2022`, "mte 1 467 2022", true},
		{"hífen literal", `e-mail`, "e mail", true},
		{"hífen literal colado", `e-mail`, "email", true},
		{"ordinal", `4(?:º|o)\s*bimestre`, "4 bimestre", true},
		{"acento no template", `previdência complementar`, "previdencia complementar", true},
		{"classe com acento", `cálcul[oó]`, "calculo", true},
		{"sinônimo expandido", `emitir guia`, "emitir boleto", true},
		{"quantificador preservado", `\bguias?\b`, "guia", true},
		{"negação bloqueia", `\bvaleu\b`, "nao valeu", false},
		{"negação em inglês bloqueia", `\bvaleu\b`, "not valeu", false},
		{"negação distante não bloqueia", `\bvaleu\b`, "nao sei mas valeu", true},
		{"sem negação", `\bvaleu\b`, "valeu", true},
		{"artigo opcional", `como funciona\s+ecac\b`, "como funciona o ecac", true},
		{"sem artigo", `como funciona\s+ecac\b`, "como funciona ecac", true},
		{"palavra afim negada", `\becac\b`, "nao ecac", false},
		{"palavra afim", `\becac\b`, "acessar o ecac", true},
		{"variante multi palavra", `\becac\b`, "acessar o centro virtual", true},
		{"sem relação", `\becac\b`, "cadprev", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := compile(t, c, tt.expr)
			assert.Equal(t, tt.matches, p.Match(tt.input), "fonte: %s", p.Source)
		})
	}
}

func TestCompilePatternCaseSensitive(t *testing.T) {
	c := newTestCompiler(t)

	insensitive, err := c.CompilePattern(PatternTemplate{Expr: "DIPR"})
	require.NoError(t, err)
	assert.True(t, insensitive.Match("envio do dipr"))

	sensitive, err := c.CompilePattern(PatternTemplate{Expr: "DIPR", CaseSensitive: true})
	require.NoError(t, err)
	assert.False(t, sensitive.Match("envio do dipr"))
}

func TestCompilePatternInvalido(t *testing.T) {
	c := newTestCompiler(t)

	for _, expr := range []string{"", "   ", "(abc", "[abc", "a{2,1}"} {
		_, err := c.CompilePattern(PatternTemplate{Expr: expr})
		assert.ErrorIs(t, err, ErrInvalidPattern, "expr %q", expr)
	}
}

func TestRewriteGuardaDeNegacao(t *testing.T) {
	c := newTestCompiler(t)

	source := c.Rewrite("valeu|obrigado")
	assert.True(t, strings.HasPrefix(source, negationGuard+"(?:"))
	assert.True(t, strings.HasSuffix(source, ")"))

	// a guarda cobre todas as alternativas
	p := compile(t, c, "valeu|obrigado")
	assert.False(t, p.Match("nao obrigado"))
	assert.False(t, p.Match("nao valeu"))
	assert.True(t, p.Match("obrigado"))
}

func TestWithAffinityKeywords(t *testing.T) {
	c := newTestCompiler(t, WithAffinityKeywords("cadprev"))

	p := compile(t, c, `acessar\s+cadprev\b`)
	assert.True(t, p.Match("acessar o cadprev"))

	q := compile(t, c, `acessar\s+ecac\b`)
	assert.False(t, q.Match("acessar o ecac"))
}

func TestWithAffinityKeywordsMetacaracteres(t *testing.T) {
	c := newTestCompiler(t, WithAffinityKeywords("a+b", "x$1"))

	source := c.Rewrite("a+b")
	assert.Contains(t, source, `(?:\b(?:o|os)\s+)?a(?:\s?)b`)
	p := compile(t, c, "a+b")
	assert.True(t, p.Match("o a b"))

	source = c.Rewrite("x$1")
	assert.Contains(t, source, `(?:\b(?:o|os)\s+)?x(?:\s?)1`)
	assert.NotContains(t, source, "$")
	compile(t, c, "x$1")
}

func TestWithAffinityKeywordsVazio(t *testing.T) {
	c := newTestCompiler(t, WithAffinityKeywords())

	p := compile(t, c, `acessar\s+ecac\b`)
	assert.False(t, p.Match("acessar o ecac"))
	assert.True(t, p.Match("acessar ecac"))
}

func TestMatchTimeout(t *testing.T) {
	c := newTestCompiler(t, WithMatchTimeout(5*time.Millisecond))

	p := compile(t, c, `(a+)+$`)
	assert.False(t, p.Match(strings.Repeat("a", 40)+"b"))
}

func TestRelaxPunctuation(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{`1\.467\/2022`, `1(?:\s?)467(?:\s?)2022`},
		{`art\.?\s*14`, `art(?:\s?)?\s*14`},
		{`cadprev[- ]?web`, `cadprev[- ]?web`},
		{`(?:a|b)(?<!x)(?=y)`, `(?:a|b)(?<!x)(?=y)`},
		{`(?i)abc`, `(?i)abc`},
		{`a{2,3}`, `a{2,3}`},
		{`a{b}`, `a(?:\s?)b}`},
		{`\bpalavra\s\d`, `\bpalavra\s\d`},
		{`14:30`, `14(?:\s?)30`},
		{`13º`, `13(?:\s?)`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, relaxPunctuation(tt.source), "source %q", tt.source)
	}
}
