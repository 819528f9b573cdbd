package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
	"github.com/regimeproprio/app-chatbot-rpps/internal/models"
)

type IntentsHandler struct {
	catalog *catalog.Catalog
}

func NewIntentsHandler(cat *catalog.Catalog) *IntentsHandler {
	return &IntentsHandler{catalog: cat}
}

// List godoc
// @Summary Lista as intents do catálogo
// @Description Retorna nome, threshold e contagens de cada intent, na ordem de avaliação.
// @Tags chat
// @Produce json
// @Success 200 {object} models.IntentsResponse
// @Router /api/v1/intents [get]
func (h *IntentsHandler) List(c *gin.Context) {
	intents := h.catalog.Intents()

	response := models.IntentsResponse{
		Total:   len(intents),
		Intents: make([]models.IntentSummary, 0, len(intents)),
	}
	for _, i := range intents {
		if !i.Reachable() {
			response.Unreachable++
		}
		response.Intents = append(response.Intents, models.IntentSummary{
			Name:      i.Name,
			Threshold: i.Threshold,
			Patterns:  len(i.Patterns),
			Responses: len(i.Responses),
			Reachable: i.Reachable(),
		})
	}

	c.JSON(http.StatusOK, response)
}
