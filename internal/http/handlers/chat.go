package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/permutei/permutei-core/internal/http/response"
	"github.com/permutei/permutei-core/internal/store"
)

type ChatHandler struct {
	store *store.Store
}

func NewChatHandler(st *store.Store) *ChatHandler {
	return &ChatHandler{store: st}
}

// GET /api/conversations
func (h *ChatHandler) List(c *gin.Context) {
	response.RespondOK(c, gin.H{"conversations": h.store.Conversations()})
}

// POST /api/conversations/:id/messages
// body: { "text": "..." }
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Text == "" {
		response.RespondError(c, http.StatusBadRequest, "text_required", errors.New("message text is required"))
		return
	}
	if !h.store.SendMessage(c.Param("id"), req.Text) {
		if !h.store.Auth().IsAuthenticated {
			response.RespondAPIError(c, errNoSession)
			return
		}
		response.RespondAPIError(c, errConversationNotFound)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
