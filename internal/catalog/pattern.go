package catalog

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/regimeproprio/app-chatbot-rpps/internal/synonyms"
	"github.com/regimeproprio/app-chatbot-rpps/internal/text"
)

const (
	// DefaultMatchTimeout limita o tempo de cada avaliação de padrão
	DefaultMatchTimeout = 250 * time.Millisecond

	negationGuard = `(?<!\b(?:nao|not)\s)`
)

// DefaultAffinityKeywords recebem um artigo opcional antes da palavra ("o ecac")
var DefaultAffinityKeywords = []string{"ecac"}

// Option configura o Compiler
type Option func(*Compiler)

// WithAffinityKeywords substitui as palavras que aceitam artigo opcional
func WithAffinityKeywords(keywords ...string) Option {
	return func(c *Compiler) {
		c.affinity = keywords
	}
}

// WithMatchTimeout define o timeout de avaliação dos padrões
func WithMatchTimeout(d time.Duration) Option {
	return func(c *Compiler) {
		if d > 0 {
			c.matchTimeout = d
		}
	}
}

// Compiler transforma templates em padrões prontos para o matching
type Compiler struct {
	expander      *synonyms.Expander
	affinity      []string
	affinityRules []affinityRule
	matchTimeout  time.Duration
}

type affinityRule struct {
	re          *regexp.Regexp
	replacement string
}

// NewCompiler cria um compilador que expande as palavras-chave da tabela
func NewCompiler(table *synonyms.Table, opts ...Option) *Compiler {
	c := &Compiler{
		expander:     synonyms.NewExpander(table),
		affinity:     DefaultAffinityKeywords,
		matchTimeout: DefaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, kw := range c.affinity {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		c.affinityRules = append(c.affinityRules, affinityRule{
			re:          regexp.MustCompile(`(?i)(^|[^A-Za-z0-9_]|\\b)` + regexp.QuoteMeta(kw) + `\b`),
			replacement: `${1}(?:\b(?:o|os)\s+)?` + strings.ReplaceAll(regexp2.Escape(kw), "$", "$$"),
		})
	}

	return c
}

// Pattern é um padrão compilado
type Pattern struct {
	Template PatternTemplate
	Source   string
	re       *regexp2.Regexp
}

// Match informa se o padrão casa com o texto. Timeout conta como não casado.
func (p *Pattern) Match(s string) bool {
	ok, err := p.re.MatchString(s)
	if err != nil {
		log.Printf("Aviso: falha ao avaliar padrão %q: %v", p.Template.Expr, err)
		return false
	}
	return ok
}

func (p *Pattern) String() string {
	return p.Source
}

// Rewrite aplica ao template as reescritas da compilação, sem compilar:
// artigo opcional, remoção de acentos, pontuação tolerante, sinônimos e
// guarda de negação.
func (c *Compiler) Rewrite(expr string) string {
	src := expr
	for _, rule := range c.affinityRules {
		src = rule.re.ReplaceAllString(src, rule.replacement)
	}

	src = text.FoldAccents(src)
	src = relaxPunctuation(src)
	src = c.expander.Expand(src)

	return negationGuard + "(?:" + src + ")"
}

// CompilePattern compila um template
func (c *Compiler) CompilePattern(tpl PatternTemplate) (*Pattern, error) {
	if strings.TrimSpace(tpl.Expr) == "" {
		return nil, fmt.Errorf("%w: expressão vazia", ErrInvalidPattern)
	}

	source := c.Rewrite(tpl.Expr)

	opts := regexp2.RegexOptions(regexp2.IgnoreCase)
	if tpl.CaseSensitive {
		opts = regexp2.None
	}

	re, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, tpl.Expr, err)
	}
	re.MatchTimeout = c.matchTimeout

	return &Pattern{Template: tpl, Source: source, re: re}, nil
}

const regexMeta = `\^$.|?*+()[]{}`

// relaxPunctuation troca a pontuação literal do template por um espaço
// opcional. O texto normalizado não tem pontuação: "1.467/2022" chega como
// "1 467 2022", então `1\.467\/2022` vira `1(?:\s?)467(?:\s?)2022`.
func relaxPunctuation(source string) string {
	rs := []rune(source)

	var b strings.Builder
	b.Grow(len(source))

	for i := 0; i < len(rs); {
		r := rs[i]

		switch {
		case r == '\\' && i+1 < len(rs):
			next := rs[i+1]
			if isASCIIAlnum(next) || unicode.IsSpace(next) {
				b.WriteRune(r)
				b.WriteRune(next)
			} else {
				b.WriteString(`(?:\s?)`)
			}
			i += 2

		case r == '[':
			end := runeClassEnd(rs, i)
			b.WriteString(string(rs[i:end]))
			i = end

		case r == '(' && i+1 < len(rs) && rs[i+1] == '?':
			end := groupPrefixEnd(rs, i)
			b.WriteString(string(rs[i:end]))
			i = end

		case r == '{':
			end, ok := quantifierEnd(rs, i)
			if !ok {
				b.WriteString(`(?:\s?)`)
				i++
				continue
			}
			b.WriteString(string(rs[i:end]))
			i = end

		case strings.ContainsRune(regexMeta, r), isASCIIAlnum(r), r == '_', unicode.IsSpace(r):
			b.WriteRune(r)
			i++

		default:
			b.WriteString(`(?:\s?)`)
			i++
		}
	}

	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func runeClassEnd(rs []rune, start int) int {
	j := start + 1
	if j < len(rs) && rs[j] == '^' {
		j++
	}
	if j < len(rs) && rs[j] == ']' {
		j++
	}
	for j < len(rs) {
		switch rs[j] {
		case '\\':
			j += 2
			continue
		case ']':
			return j + 1
		}
		j++
	}
	return len(rs)
}

// groupPrefixEnd retorna o índice após o prefixo de grupo: (?: (?= (?! (?> (?<= (?<! (?<nome> (?i)
func groupPrefixEnd(rs []rune, start int) int {
	j := start + 2
	if j >= len(rs) {
		return len(rs)
	}

	switch rs[j] {
	case ':', '=', '!', '>':
		return j + 1
	case '<':
		if j+1 < len(rs) && (rs[j+1] == '=' || rs[j+1] == '!') {
			return j + 2
		}
		for j < len(rs) && rs[j] != '>' {
			j++
		}
		return min(j+1, len(rs))
	case '\'':
		j++
		for j < len(rs) && rs[j] != '\'' {
			j++
		}
		return min(j+1, len(rs))
	}

	for j < len(rs) && (unicode.IsLetter(rs[j]) || rs[j] == '-') {
		j++
	}
	if j < len(rs) && (rs[j] == ':' || rs[j] == ')') {
		j++
	}
	return j
}

// quantifierEnd reconhece {n}, {n,} e {n,m}
func quantifierEnd(rs []rune, start int) (int, bool) {
	j := start + 1
	digits := 0
	for j < len(rs) && (('0' <= rs[j] && rs[j] <= '9') || rs[j] == ',') {
		if rs[j] != ',' {
			digits++
		}
		j++
	}
	if digits == 0 || j >= len(rs) || rs[j] != '}' {
		return 0, false
	}
	return j + 1, true
}
