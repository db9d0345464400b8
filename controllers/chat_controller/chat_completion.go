package chat_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
)

// ChatCompletion godoc
// @Summary Run one assistant completion
// @Description Sends the conversation to OpenAI or Gemini (selected by model prefix) with the store-analytics system prompt enforced server-side.
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChatRequest true "Conversation"
// @Success 200 {object} models.ApiResponse{data=models.ChatResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /chat [post]
func ChatCompletion(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "messages are required"))
		return
	}

	log.Printf("[chat.completion] start model=%s messages=%d", req.Model, len(req.Messages))

	reply, err := services.CompleteChat(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrChatNotConfigured) {
			log.Printf("[chat.completion] ERROR missing provider key")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Chat service unavailable"))
			return
		}
		log.Printf("[chat.completion] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to get assistant response", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Chat completion successful", models.ChatResponse{Message: reply}))
}
