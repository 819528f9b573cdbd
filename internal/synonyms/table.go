package synonyms

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/regimeproprio/app-chatbot-rpps/internal/text"
)

// Table é a tabela imutável de sinônimos usada na compilação dos templates
type Table struct {
	entries []entry
	byRoot  map[string]int
}

type entry struct {
	root        string
	variants    []string
	replacement string
}

// NewTable valida os grupos e monta a tabela.
// As variantes são normalizadas como as perguntas, deduplicadas e escapadas.
func NewTable(groups []Group) (*Table, error) {
	t := &Table{
		entries: make([]entry, 0, len(groups)),
		byRoot:  make(map[string]int, len(groups)),
	}

	for i, group := range groups {
		root := strings.ToLower(strings.TrimSpace(group.Root))
		if root == "" {
			return nil, fmt.Errorf("%w: grupo %d", ErrEmptyRoot, i)
		}
		if text.Normalize(root) != root {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRoot, group.Root)
		}
		if _, exists := t.byRoot[root]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoot, group.Root)
		}
		if len(group.Variants) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptySynonymGroup, group.Root)
		}

		seen := make(map[string]bool, len(group.Variants))
		variants := make([]string, 0, len(group.Variants))
		escaped := make([]string, 0, len(group.Variants))
		for _, v := range group.Variants {
			normalized := text.Normalize(v)
			if normalized == "" {
				return nil, fmt.Errorf("%w: %q em %q", ErrEmptyVariant, v, group.Root)
			}
			if seen[normalized] {
				continue
			}
			seen[normalized] = true
			variants = append(variants, normalized)
			escaped = append(escaped, regexp2.Escape(normalized))
		}

		t.byRoot[root] = len(t.entries)
		t.entries = append(t.entries, entry{
			root:        root,
			variants:    variants,
			replacement: "(?:" + strings.Join(escaped, "|") + ")",
		})
	}

	// Mais longas primeiro; empate mantém a ordem de declaração
	sort.SliceStable(t.entries, func(i, j int) bool {
		return len(t.entries[i].root) > len(t.entries[j].root)
	})
	for i, e := range t.entries {
		t.byRoot[e.root] = i
	}

	return t, nil
}

// NewDefaultTable monta a tabela com DefaultGroups
func NewDefaultTable() (*Table, error) {
	return NewTable(DefaultGroups)
}

// Len retorna o número de palavras-chave
func (t *Table) Len() int {
	return len(t.entries)
}

// Variants retorna as variantes normalizadas de uma palavra-chave
func (t *Table) Variants(root string) ([]string, bool) {
	i, ok := t.byRoot[strings.ToLower(root)]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t.entries[i].variants))
	copy(out, t.entries[i].variants)
	return out, true
}

// Roots lista as palavras-chave na ordem em que a expansão as testa
func (t *Table) Roots() []string {
	roots := make([]string, len(t.entries))
	for i, e := range t.entries {
		roots[i] = e.root
	}
	return roots
}

// lookup procura uma palavra-chave inteira começando em source[i]
func (t *Table) lookup(source string, i int) (entry, bool) {
	for _, e := range t.entries {
		end := i + len(e.root)
		if end > len(source) || !strings.EqualFold(source[i:end], e.root) {
			continue
		}
		if end < len(source) && (isWordByte(source[end]) || isQuantifier(source[end])) {
			continue
		}
		return e, true
	}
	return entry{}, false
}
