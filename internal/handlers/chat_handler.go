package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "budgetflow/internal/errors"
	"budgetflow/internal/services"
)

// ChatHandler handles chat assistant requests.
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents a single chat message payload
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat handles a chat assistant message
// @Summary     Send a chat message
// @Description Process a free-text message. Expense phrases like "add 400 to groceries" are logged as personal transactions; other messages get a budgeting answer or the help text.
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChatRequest true "Chat message"
// @Success     200 {object} services.ChatReply "Assistant reply"
// @Failure     400 {object} services.ChatReply "Empty or malformed message"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	// Blank messages keep the chat response shape so clients can render
	// the reply inline instead of handling a separate error format.
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, services.ChatReply{
			Reply:            "Please provide a valid message.",
			TransactionAdded: false,
		})
		return
	}

	reply, err := h.chatService.HandleMessage(userID, req.Message)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}
