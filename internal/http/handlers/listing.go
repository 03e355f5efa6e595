package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/permutei/permutei-core/internal/http/response"
	"github.com/permutei/permutei-core/internal/store"
	"github.com/permutei/permutei-core/internal/types"
)

type ListingHandler struct {
	store *store.Store
}

func NewListingHandler(st *store.Store) *ListingHandler {
	return &ListingHandler{store: st}
}

// GET /api/listings
func (h *ListingHandler) List(c *gin.Context) {
	response.RespondOK(c, gin.H{"listings": h.store.Listings()})
}

// POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req types.NewListingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Title == "" {
		response.RespondError(c, http.StatusBadRequest, "title_required", errors.New("title is required"))
		return
	}
	listing, ok := h.store.AddListing(req)
	if !ok {
		response.RespondAPIError(c, errNoSession)
		return
	}
	response.RespondOK(c, gin.H{"listing": listing})
}

// DELETE /api/listings/:id
// Owner-only; an unknown id is treated as already deleted.
func (h *ListingHandler) Delete(c *gin.Context) {
	if h.store.RemoveListing(c.Param("id")) {
		response.RespondOK(c, gin.H{"ok": true})
		return
	}
	if !h.store.Auth().IsAuthenticated {
		response.RespondAPIError(c, errNoSession)
		return
	}
	response.RespondAPIError(c, errNotOwner)
}

// POST /api/listings/:id/highlight
func (h *ListingHandler) Highlight(c *gin.Context) {
	if h.store.HighlightListing(c.Param("id")) {
		response.RespondOK(c, gin.H{"ok": true})
		return
	}
	if !h.store.Auth().IsAuthenticated {
		response.RespondAPIError(c, errNoSession)
		return
	}
	response.RespondAPIError(c, errInsufficientBalance)
}

// POST /api/listings/:id/favorite
func (h *ListingHandler) ToggleFavorite(c *gin.Context) {
	if !h.store.ToggleFavorite(c.Param("id")) {
		response.RespondAPIError(c, errNoSession)
		return
	}
	response.RespondOK(c, gin.H{"favorite_ids": h.store.Auth().User.FavoriteIDs})
}

// POST /api/listings/:id/proposal
// body: { "text": "..." }
func (h *ListingHandler) SendProposal(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Text == "" {
		response.RespondError(c, http.StatusBadRequest, "text_required", errors.New("proposal text is required"))
		return
	}
	convID, ok := h.store.SendProposal(c.Param("id"), req.Text)
	if !ok {
		if !h.store.Auth().IsAuthenticated {
			response.RespondAPIError(c, errNoSession)
			return
		}
		response.RespondAPIError(c, errListingNotFound)
		return
	}
	response.RespondOK(c, gin.H{"conversation_id": convID})
}
