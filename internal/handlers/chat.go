package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"civic-report-backend/internal/assistant"
	"civic-report-backend/internal/gemini"
	"civic-report-backend/internal/models"
)

type ChatHandler struct {
	router *assistant.Router
}

func NewChatHandler(router *assistant.Router) *ChatHandler {
	return &ChatHandler{router: router}
}

// Chat godoc
// @Summary     Ask the assistant
// @Description Answers common questions with fixed replies; anything else is delegated to the generative model.
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       request body models.ChatRequest true "Chat message"
// @Success     200 {object} models.ChatResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "message is required"})
		return
	}

	reply, err := h.router.Reply(c.Request.Context(), req.Message)
	if err != nil {
		// Vendor-side errors keep their original status and message for
		// diagnosability; everything else is an opaque 500.
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, models.ErrorResponse{
				Status: apiErr.StatusCode,
				Error:  apiErr.Message,
			})
			return
		}
		log.Printf("Assistant request failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "assistant service is unavailable"})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}
