package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/intents.yaml
var defaultDefinition []byte

// Definition é a forma declarativa do catálogo, como escrita em YAML
type Definition struct {
	Intents           []IntentDefinition `yaml:"intents"`
	FallbackResponses []string           `yaml:"fallback_responses"`
}

// IntentDefinition descreve uma intent antes da compilação
type IntentDefinition struct {
	Name      string            `yaml:"name"`
	Threshold int               `yaml:"threshold"`
	Patterns  []PatternTemplate `yaml:"patterns"`
	Responses []string          `yaml:"responses"`
	Samples   []string          `yaml:"samples,omitempty"`
}

// PatternTemplate é um padrão antes da expansão de sinônimos.
// No YAML aceita uma string simples ou o mapa {expr, case_sensitive}.
type PatternTemplate struct {
	Expr          string `yaml:"expr"`
	CaseSensitive bool   `yaml:"case_sensitive,omitempty"`
}

// UnmarshalYAML aceita as duas formas de padrão
func (p *PatternTemplate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.CaseSensitive = false
		return node.Decode(&p.Expr)
	}

	type plain PatternTemplate
	var v plain
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = PatternTemplate(v)
	return nil
}

// LoadDefinition lê uma definição YAML. Campos desconhecidos são erro.
func LoadDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return &def, nil
}

// LoadDefinitionFile lê a definição de um arquivo
func LoadDefinitionFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir catálogo %s: %w", path, err)
	}
	defer f.Close()

	def, err := LoadDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("catálogo %s: %w", path, err)
	}
	return def, nil
}

// DefaultDefinition retorna a definição embutida no binário
func DefaultDefinition() (*Definition, error) {
	return LoadDefinition(bytes.NewReader(defaultDefinition))
}
