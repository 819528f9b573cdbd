package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
	"github.com/regimeproprio/app-chatbot-rpps/internal/intent"
	"github.com/regimeproprio/app-chatbot-rpps/internal/models"
	"github.com/regimeproprio/app-chatbot-rpps/internal/synonyms"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	table, err := synonyms.NewTable(nil)
	require.NoError(t, err)

	cat, err := catalog.NewCompiler(table).Compile(&catalog.Definition{
		Intents: []catalog.IntentDefinition{
			{
				Name:      "portal",
				Threshold: 1,
				Patterns:  []catalog.PatternTemplate{{Expr: `\bportal\b`}},
				Responses: []string{"Acesse https://www.gov.br/previdencia para mais detalhes."},
			},
			{
				Name:      "inalcancavel",
				Threshold: 2,
				Patterns:  []catalog.PatternTemplate{{Expr: `x`}},
				Responses: []string{"nunca"},
			},
		},
		FallbackResponses: []string{"Desculpe, não entendi."},
	})
	require.NoError(t, err)
	return cat
}

type identityStemmer struct{}

func (identityStemmer) Stem(w string) string { return w }

func testEngine(t *testing.T) *intent.Engine {
	t.Helper()
	engine, err := intent.NewEngine(testCatalog(t), intent.WithStemmer(identityStemmer{}))
	require.NoError(t, err)
	return engine
}

func newChatHandler(t *testing.T, maxLen int) *ChatHandler {
	t.Helper()
	h, err := NewChatHandler(testEngine(t), maxLen)
	require.NoError(t, err)
	return h
}

func TestNewChatHandlerLimiteInvalido(t *testing.T) {
	for _, maxLen := range []int{0, -1} {
		h, err := NewChatHandler(testEngine(t), maxLen)
		assert.ErrorIs(t, err, ErrInvalidMaxLength)
		assert.Nil(t, h)
	}
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", h.Chat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	h := newChatHandler(t, 50)

	w := postChat(t, h, `{"message": "Como acessar o portal?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "portal", response.Intent)
	assert.True(t, response.Matched)
	assert.Equal(t, "Acesse https://www.gov.br/previdencia para mais detalhes.", response.Reply)
	assert.Empty(t, response.HTML)
	assert.Nil(t, response.Explanation)
	_, err := uuid.Parse(response.ID)
	assert.NoError(t, err)
}

func TestChatHTMLEExplicacao(t *testing.T) {
	h := newChatHandler(t, 50)

	w := postChat(t, h, `{"message": "portal", "format": "html", "explain": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.HTML, `href="https://www.gov.br/previdencia"`)
	require.NotNil(t, response.Explanation)
	assert.Equal(t, "pattern", response.Explanation.Layer)
	assert.Equal(t, 1, response.Explanation.Score)
	assert.Equal(t, "portal", response.Explanation.Normalized)
}

func TestChatMensagemVaziaRecebeFallback(t *testing.T) {
	h := newChatHandler(t, 50)

	w := postChat(t, h, `{"message": ""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Matched)
	assert.Empty(t, response.Intent)
	assert.Equal(t, "Desculpe, não entendi.", response.Reply)
}

func TestChatValidacao(t *testing.T) {
	h := newChatHandler(t, 10)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"json inválido", `{"message": `, "Dados inválidos"},
		{"mensagem longa", `{"message": "` + strings.Repeat("á", 11) + `"}`, models.ErrMessageTooLong.Error()},
		{"formato inválido", `{"message": "oi", "format": "pdf"}`, models.ErrInvalidFormat.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postChat(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, response.Error, tt.message)
		})
	}

	// o limite conta caracteres, não bytes
	w := postChat(t, h, `{"message": "`+strings.Repeat("á", 10)+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIntentsList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/intents", NewIntentsHandler(testCatalog(t)).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/intents", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response models.IntentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 1, response.Unreachable)
	assert.Equal(t, models.IntentSummary{Name: "portal", Threshold: 1, Patterns: 1, Responses: 1, Reachable: true}, response.Intents[0])
	assert.False(t, response.Intents[1].Reachable)
}

type emptyResolver struct{}

func (emptyResolver) Resolve(context.Context, string) *intent.Resolution {
	return &intent.Resolution{}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		handler   *HealthHandler
		path      string
		status    int
		bodyState string
	}{
		{"liveness", NewHealthHandler(nil, nil), "/liveness", http.StatusOK, "alive"},
		{"readiness ok", NewHealthHandler(testCatalog(t), nil), "/readiness", http.StatusOK, "ready"},
		{"readiness sem catálogo", NewHealthHandler(nil, nil), "/readiness", http.StatusServiceUnavailable, "not_ready"},
		{"health ok", NewHealthHandler(testCatalog(t), testEngine(t)), "/health", http.StatusOK, "healthy"},
		{"health sem resposta", NewHealthHandler(testCatalog(t), emptyResolver{}), "/health", http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/liveness", tt.handler.Liveness)
			r.GET("/readiness", tt.handler.Readiness)
			r.GET("/health", tt.handler.Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)

			var response HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.bodyState, response.Status)
		})
	}
}
