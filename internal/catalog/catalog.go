// Package catalog compila as definições declarativas de intents em um
// catálogo imutável, pronto para o matching.
package catalog

import (
	"fmt"
	"strings"

	"github.com/regimeproprio/app-chatbot-rpps/internal/synonyms"
	"github.com/regimeproprio/app-chatbot-rpps/internal/text"
)

// Intent é uma intent compilada
type Intent struct {
	Name      string
	Threshold int
	Patterns  []*Pattern
	Responses []string
	Samples   []string

	identifiers []string
}

// Identifiers retorna os textos usados pelo fallback por similaridade:
// o nome (com _ trocado por espaço) e as respostas, todos normalizados.
func (i *Intent) Identifiers() []string {
	return i.identifiers
}

func (i *Intent) addIdentifier(s string) {
	if id := text.Normalize(s); id != "" {
		i.identifiers = append(i.identifiers, id)
	}
}

// Reachable informa se o threshold pode ser atingido só com padrões
func (i *Intent) Reachable() bool {
	return i.Threshold <= len(i.Patterns)
}

// Catalog é o conjunto ordenado de intents. Imutável após Compile.
type Catalog struct {
	intents  []*Intent
	byName   map[string]*Intent
	fallback []string
}

// Intents retorna as intents na ordem do catálogo
func (c *Catalog) Intents() []*Intent {
	out := make([]*Intent, len(c.intents))
	copy(out, c.intents)
	return out
}

// Len retorna o número de intents
func (c *Catalog) Len() int {
	return len(c.intents)
}

// Lookup busca uma intent pelo nome
func (c *Catalog) Lookup(name string) (*Intent, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// FallbackResponses retorna as respostas genéricas
func (c *Catalog) FallbackResponses() []string {
	out := make([]string, len(c.fallback))
	copy(out, c.fallback)
	return out
}

// Unreachable lista as intents cujo threshold excede o número de padrões
func (c *Catalog) Unreachable() []*Intent {
	var out []*Intent
	for _, i := range c.intents {
		if !i.Reachable() {
			out = append(out, i)
		}
	}
	return out
}

// Compile valida a definição e compila todas as intents
func (c *Compiler) Compile(def *Definition) (*Catalog, error) {
	if def == nil {
		return nil, ErrEmptyDefinition
	}

	cat := &Catalog{
		intents: make([]*Intent, 0, len(def.Intents)),
		byName:  make(map[string]*Intent, len(def.Intents)),
	}

	for idx, d := range def.Intents {
		intent, err := c.compileIntent(d)
		if err != nil {
			if d.Name == "" {
				return nil, fmt.Errorf("intent %d: %w", idx, err)
			}
			return nil, fmt.Errorf("intent %q: %w", d.Name, err)
		}
		if _, exists := cat.byName[intent.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIntent, intent.Name)
		}
		cat.byName[intent.Name] = intent
		cat.intents = append(cat.intents, intent)
	}

	if len(def.FallbackResponses) == 0 {
		return nil, ErrNoFallbackResponses
	}
	for _, r := range def.FallbackResponses {
		if strings.TrimSpace(r) == "" {
			return nil, fmt.Errorf("fallback: %w", ErrEmptyResponse)
		}
	}
	cat.fallback = append([]string(nil), def.FallbackResponses...)

	return cat, nil
}

func (c *Compiler) compileIntent(d IntentDefinition) (*Intent, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, ErrEmptyIntentName
	}
	if d.Threshold < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, d.Threshold)
	}
	if len(d.Responses) == 0 {
		return nil, ErrNoResponses
	}

	intent := &Intent{
		Name:      name,
		Threshold: d.Threshold,
		Patterns:  make([]*Pattern, 0, len(d.Patterns)),
		Responses: append([]string(nil), d.Responses...),
		Samples:   append([]string(nil), d.Samples...),
	}

	for i, tpl := range d.Patterns {
		p, err := c.CompilePattern(tpl)
		if err != nil {
			return nil, fmt.Errorf("padrão %d: %w", i, err)
		}
		intent.Patterns = append(intent.Patterns, p)
	}

	intent.addIdentifier(strings.ReplaceAll(name, "_", " "))
	for _, r := range d.Responses {
		if strings.TrimSpace(r) == "" {
			return nil, ErrEmptyResponse
		}
		intent.addIdentifier(r)
	}

	return intent, nil
}

// Load monta o catálogo padrão: definição do arquivo informado (ou a
// embutida quando path é vazio) e tabela de sinônimos DefaultGroups.
func Load(path string, opts ...Option) (*Catalog, error) {
	table, err := synonyms.NewDefaultTable()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSynonyms, err)
	}

	var def *Definition
	if path == "" {
		def, err = DefaultDefinition()
	} else {
		def, err = LoadDefinitionFile(path)
	}
	if err != nil {
		return nil, err
	}

	return NewCompiler(table, opts...).Compile(def)
}
