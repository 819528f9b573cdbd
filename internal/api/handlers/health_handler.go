package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	catalog  *catalog.Catalog
	resolver Resolver
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(cat *catalog.Catalog, resolver Resolver) *HealthHandler {
	return &HealthHandler{
		catalog:  cat,
		resolver: resolver,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se o catálogo de intents foi compilado
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.catalogReady() {
		response.Checks["catalog"] = strconv.Itoa(h.catalog.Len()) + " intents"
	} else {
		response.Checks["catalog"] = "failed"
		response.Status = "not_ready"
		response.Error = "Catálogo de intents não carregado"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica o catálogo e executa uma classificação de teste
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.catalogReady() {
		response.Checks["catalog"] = "ok"
	} else {
		response.Checks["catalog"] = "failed"
		response.Status = "unhealthy"
		response.Error = "Catálogo de intents não carregado"
	}

	if h.resolver != nil && h.resolver.Resolve(c.Request.Context(), "oi").Reply != "" {
		response.Checks["engine"] = "ok"
	} else {
		response.Checks["engine"] = "failed"
		response.Status = "unhealthy"
		response.Error = "Motor de intents sem resposta"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

func (h *HealthHandler) catalogReady() bool {
	return h.catalog != nil && h.catalog.Len() > 0
}
