package synonyms

import "strings"

// Expander reescreve templates de padrão trocando cada palavra-chave por
// uma alternação das suas variantes.
//
// A varredura é única, da esquerda para a direita: texto inserido por uma
// expansão nunca é expandido de novo. Palavras-chave coladas a uma sequência
// de escape (\bsei, \s*parcela), seguidas de quantificador (parcelas?) ou
// dentro de classes de caracteres ficam literais.
type Expander struct {
	table *Table
}

// NewExpander cria um expansor sobre a tabela
func NewExpander(table *Table) *Expander {
	return &Expander{table: table}
}

// Expand retorna o template com as palavras-chave expandidas
func (e *Expander) Expand(source string) string {
	if e == nil || e.table == nil || e.table.Len() == 0 {
		return source
	}

	var b strings.Builder
	b.Grow(len(source) * 2)

	for i := 0; i < len(source); {
		c := source[i]

		if c == '\\' && i+1 < len(source) {
			b.WriteString(source[i : i+2])
			i += 2
			continue
		}

		if c == '[' {
			end := classEnd(source, i)
			b.WriteString(source[i:end])
			i = end
			continue
		}

		if isWordByte(c) && (i == 0 || !isWordByte(source[i-1])) {
			if ent, ok := e.table.lookup(source, i); ok {
				b.WriteString(ent.replacement)
				i += len(ent.root)
				continue
			}
		}

		b.WriteByte(c)
		i++
	}

	return b.String()
}

// classEnd retorna o índice logo após o ']' que fecha a classe aberta em start
func classEnd(source string, start int) int {
	j := start + 1
	if j < len(source) && source[j] == '^' {
		j++
	}
	if j < len(source) && source[j] == ']' {
		j++
	}
	for j < len(source) {
		switch source[j] {
		case '\\':
			j += 2
			continue
		case ']':
			return j + 1
		}
		j++
	}
	return len(source)
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isQuantifier(c byte) bool {
	return c == '?' || c == '*' || c == '+' || c == '{'
}
