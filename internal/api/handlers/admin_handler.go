package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regimeproprio/app-chatbot-rpps/internal/intent"
	middlewares "github.com/regimeproprio/app-chatbot-rpps/internal/middleware"
	"github.com/regimeproprio/app-chatbot-rpps/internal/models"
)

// AdminHandler expõe operações de manutenção do motor
type AdminHandler struct {
	cache *intent.ResolutionCache
}

// NewAdminHandler cria o handler; cache nil indica cache desabilitado
func NewAdminHandler(cache *intent.ResolutionCache) *AdminHandler {
	return &AdminHandler{cache: cache}
}

// CacheStats godoc
// @Summary Estatísticas do cache de decisões
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CacheStatsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/v1/admin/cache [get]
func (h *AdminHandler) CacheStats(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusOK, models.CacheStatsResponse{})
		return
	}

	size, expired := h.cache.Stats()
	c.JSON(http.StatusOK, models.CacheStatsResponse{
		Enabled: true,
		Size:    size,
		Expired: expired,
	})
}

// ClearCache godoc
// @Summary Limpa o cache de decisões
// @Tags admin
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/v1/admin/cache [delete]
func (h *AdminHandler) ClearCache(c *gin.Context) {
	if h.cache != nil {
		h.cache.Clear()
		log.Printf("Cache de decisões limpo por %s", middlewares.GetUserID(c))
	}
	c.Status(http.StatusNoContent)
}
