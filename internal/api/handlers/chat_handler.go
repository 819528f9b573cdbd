package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/regimeproprio/app-chatbot-rpps/internal/intent"
	middlewares "github.com/regimeproprio/app-chatbot-rpps/internal/middleware"
	"github.com/regimeproprio/app-chatbot-rpps/internal/models"
	"github.com/regimeproprio/app-chatbot-rpps/internal/utils"
)

// ErrInvalidMaxLength indica limite de mensagem não positivo
var ErrInvalidMaxLength = errors.New("tamanho máximo de mensagem deve ser positivo")

// Resolver é o que o handler precisa do motor de intents
type Resolver interface {
	Resolve(ctx context.Context, message string) *intent.Resolution
}

type ChatHandler struct {
	resolver  Resolver
	validator *validator.Validate
}

// NewChatHandler cria o handler de chat; mensagens acima de maxMessageLength
// caracteres são rejeitadas.
func NewChatHandler(resolver Resolver, maxMessageLength int) (*ChatHandler, error) {
	if maxMessageLength <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxLength, maxMessageLength)
	}

	v := validator.New()
	err := v.RegisterValidation("message_length", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) <= maxMessageLength
	})
	if err != nil {
		return nil, fmt.Errorf("registrar validação message_length: %w", err)
	}

	return &ChatHandler{
		resolver:  resolver,
		validator: v,
	}, nil
}

// Chat godoc
// @Summary Envia uma mensagem ao chatbot
// @Description Classifica a mensagem em uma intent do catálogo e devolve uma das respostas. Sem intent, devolve uma resposta genérica.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Mensagem"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var request models.ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Dados inválidos: " + err.Error()})
		return
	}

	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validationMessage(err)})
		return
	}

	res := h.resolver.Resolve(c.Request.Context(), request.Message)

	id := middlewares.RequestID(c)
	if id == "" {
		id = uuid.NewString()
	}

	response := models.ChatResponse{
		ID:      id,
		Reply:   res.Reply,
		Intent:  res.IntentName(),
		Matched: res.Matched(),
	}
	if request.Format == models.FormatHTML {
		response.HTML = utils.ReplyToHTML(res.Reply)
	}
	if request.Explain {
		response.Explanation = &models.Explanation{
			Layer:      string(res.Layer),
			Score:      res.Score,
			Similarity: res.Similarity,
			Normalized: res.Query.Normalized,
			Stemmed:    res.Query.Stemmed,
		}
	}

	c.JSON(http.StatusOK, response)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validação falhou: " + err.Error()
	}

	switch verrs[0].Tag() {
	case "message_length":
		return models.ErrMessageTooLong.Error()
	case "oneof":
		return models.ErrInvalidFormat.Error()
	}
	return "Validação falhou: " + err.Error()
}
