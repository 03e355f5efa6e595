package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/permutei/permutei-core/internal/http/response"
	"github.com/permutei/permutei-core/internal/store"
)

type WalletHandler struct {
	store *store.Store
}

func NewWalletHandler(st *store.Store) *WalletHandler {
	return &WalletHandler{store: st}
}

// POST /api/wallet/recharge
// body: { "amount": 50.0 }
func (h *WalletHandler) Recharge(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Amount <= 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_amount", errors.New("amount must be positive"))
		return
	}
	if !h.store.RechargeWallet(req.Amount) {
		response.RespondAPIError(c, errNoSession)
		return
	}
	response.RespondOK(c, gin.H{"wallet_balance": h.store.Auth().User.WalletBalance})
}

// POST /api/subscription
func (h *WalletHandler) Subscribe(c *gin.Context) {
	if h.store.SubscribePro() {
		response.RespondOK(c, gin.H{"user": h.store.Auth().User})
		return
	}
	if !h.store.Auth().IsAuthenticated {
		response.RespondAPIError(c, errNoSession)
		return
	}
	response.RespondAPIError(c, errInsufficientBalance)
}
