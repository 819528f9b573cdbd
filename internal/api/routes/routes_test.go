package routes

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regimeproprio/app-chatbot-rpps/internal/api/handlers"
	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
	"github.com/regimeproprio/app-chatbot-rpps/internal/config"
	"github.com/regimeproprio/app-chatbot-rpps/internal/intent"
	"github.com/regimeproprio/app-chatbot-rpps/internal/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load("")
	require.NoError(t, err)
	engine, err := intent.NewEngine(cat)
	require.NoError(t, err)

	cfg := &config.Config{Chatbot: config.ChatbotConfig{MaxMessageLength: 100}}
	r, err := SetupRouter(cfg, engine)
	require.NoError(t, err)
	return r
}

func TestSetupRouterLimiteInvalido(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)
	engine, err := intent.NewEngine(cat)
	require.NoError(t, err)

	r, err := SetupRouter(&config.Config{}, engine)
	assert.ErrorIs(t, err, handlers.ErrInvalidMaxLength)
	assert.Nil(t, r)
}

func TestSetupRouterChat(t *testing.T) {
	r := newTestRouter(t)

	body, _ := json.Marshal(models.ChatRequest{Message: "obrigado"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "agradecimento", response.Intent)
	assert.Equal(t, w.Header().Get("X-Request-ID"), response.ID)
}

func TestSetupRouterRotas(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/liveness", "/readiness", "/health", "/api/v1/intents"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCorsPreflight(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/chat", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminCacheExigeAdmin(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/cache", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	payload := base64.RawURLEncoding.EncodeToString([]byte(
		`{"sub":"op","resource_access":{"chatbot":{"roles":["chatbot:admin"]}}}`))
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/cache", nil)
	req.Header.Set("Authorization", "Bearer h."+payload+".s")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
