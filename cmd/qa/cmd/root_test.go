package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestAskExplain(t *testing.T) {
	out, err := run(t, "", "ask", "--explain", "obrigado")
	require.NoError(t, err)

	assert.Contains(t, out, "camada: pattern")
	assert.Contains(t, out, "intent: agradecimento")
}

func TestAskFallback(t *testing.T) {
	out, err := run(t, "", "ask", "--explain", "xyzabc123")
	require.NoError(t, err)

	assert.Contains(t, out, "camada: fallback")
	assert.Contains(t, out, "intent: -")
}

func TestAskSemPergunta(t *testing.T) {
	_, err := run(t, "", "ask")
	assert.Error(t, err)
}

func TestChat(t *testing.T) {
	out, err := run(t, "oi\n\nvaleu\nsair\nobrigado\n", "chat", "--explain")
	require.NoError(t, err)

	assert.Contains(t, out, "intent: saudacao")
	assert.Contains(t, out, "intent: agradecimento")
	assert.Equal(t, 2, strings.Count(out, "camada:"))
}

func TestIntents(t *testing.T) {
	out, err := run(t, "", "intents")
	require.NoError(t, err)

	assert.Contains(t, out, "INTENT")
	assert.Contains(t, out, "funcionamento_ecac")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "62 intents")

	path := filepath.Join(t.TempDir(), "intents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
intents:
  - name: so_similaridade
    threshold: 2
    patterns: ['a']
    responses: ['ok']
fallback_responses: ['?']
`), 0o644))

	out, err = run(t, "", "validate", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "inalcançável: so_similaridade")

	_, err = run(t, "", "validate", "--strict", "--catalog", path)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "ruim.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("intents: []\nfallback_responses: []\n"), 0o644))
	_, err = run(t, "", "validate", "--catalog", bad)
	assert.Error(t, err)
}

func TestSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
intents:
  - name: prazo
    threshold: 1
    patterns: ['\bprazo\b']
    responses: ['ok']
    samples: ['qual o prazo', 'quando vence']
fallback_responses: ['?']
`), 0o644))

	out, err := run(t, "", "samples", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1/2 exemplos corretos")

	_, err = run(t, "", "samples", "--catalog", path, "--min-rate", "0.9")
	assert.Error(t, err)
}
