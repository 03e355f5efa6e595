package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/permutei/permutei-core/internal/http/response"
	"github.com/permutei/permutei-core/internal/store"
)

type AuthHandler struct {
	store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

// GET /api/auth
func (h *AuthHandler) GetAuth(c *gin.Context) {
	response.RespondOK(c, gin.H{"auth": h.store.Auth()})
}

// POST /api/auth/login
// body: { "email": "..." }
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Email == "" {
		response.RespondError(c, http.StatusBadRequest, "email_required", errors.New("email is required"))
		return
	}
	user := h.store.Login(req.Email)
	response.RespondOK(c, gin.H{"user": user})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	response.RespondOK(c, gin.H{"ok": true})
}
