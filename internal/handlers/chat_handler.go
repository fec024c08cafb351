package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "expenser/internal/errors"
	"expenser/internal/pagination"
	"expenser/internal/services"
)

// ChatHandler serves the AI assistant conversation.
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessageRequest represents the chat message payload
type SendMessageRequest struct {
	Message string `json:"message" binding:"required,max=4000" example:"How much did I spend on food this month?"`
}

// SendMessage forwards a message to the assistant and returns its reply
// @Summary     Send a chat message
// @Description Send a message to the AI financial assistant and receive its reply
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SendMessageRequest true "Message to send"
// @Success     200 {object} map[string]interface{} "Assistant reply"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Assistant unavailable"
// @Router      /chat/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	reply, err := h.chatService.SendMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": reply})
}

// GetMessages returns the conversation history
// @Summary     List chat messages
// @Description Get the user's conversation history in chronological order
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Page size (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ChatMessage] "Paginated messages"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /chat/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	messages, err := h.chatService.GetMessages(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
