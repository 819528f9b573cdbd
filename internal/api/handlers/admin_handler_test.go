package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regimeproprio/app-chatbot-rpps/internal/intent"
	"github.com/regimeproprio/app-chatbot-rpps/internal/models"
)

func adminTestRouter(h *AdminHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cache", h.CacheStats)
	r.DELETE("/cache", h.ClearCache)
	return r
}

func cacheStats(t *testing.T, r *gin.Engine) models.CacheStatsResponse {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cache", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.CacheStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	return stats
}

func TestAdminCacheDesabilitado(t *testing.T) {
	r := adminTestRouter(NewAdminHandler(nil))

	assert.False(t, cacheStats(t, r).Enabled)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cache", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdminCacheStatsEClear(t *testing.T) {
	cache := intent.NewResolutionCache(time.Hour, 10)
	engine, err := intent.NewEngine(testCatalog(t),
		intent.WithStemmer(identityStemmer{}),
		intent.WithResolutionCache(cache),
	)
	require.NoError(t, err)
	engine.Resolve(context.Background(), "portal")

	r := adminTestRouter(NewAdminHandler(engine.Cache()))

	stats := cacheStats(t, r)
	assert.True(t, stats.Enabled)
	assert.Equal(t, 1, stats.Size)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cache", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, cacheStats(t, r).Size)
}
