package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/permutei/permutei-core/internal/http/response"
	"github.com/permutei/permutei-core/internal/store"
)

// AdminHandler serves the dashboard rollup: revenue aggregates plus the
// newest-first transaction history.
type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

// GET /api/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	response.RespondOK(c, gin.H{"stats": h.store.Stats()})
}
