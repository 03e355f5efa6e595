package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/permutei/permutei-core/internal/http/handlers"
	"github.com/permutei/permutei-core/internal/platform/ids"
	"github.com/permutei/permutei-core/internal/platform/logger"
	"github.com/permutei/permutei-core/internal/store"
)

func newTestRouter(t *testing.T, opts ...store.Option) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	base := []store.Option{
		store.WithIDGenerator(ids.NewSequenceGenerator("id")),
		store.WithNow(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }),
	}
	st := store.New(log, append(base, opts...)...)

	router := NewRouter(RouterConfig{
		Log:            log,
		HealthHandler:  handlers.NewHealthHandler(),
		AuthHandler:    handlers.NewAuthHandler(st),
		ListingHandler: handlers.NewListingHandler(st),
		WalletHandler:  handlers.NewWalletHandler(st),
		ChatHandler:    handlers.NewChatHandler(st),
		AdminHandler:   handlers.NewAdminHandler(st),
	})
	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestLoginStampsEmail(t *testing.T) {
	router, st := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{"email": "maria@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := st.Auth().User.Email; got != "maria@example.com" {
		t.Fatalf("session email = %s", got)
	}
}

func TestCreateListingRequiresSession(t *testing.T) {
	router, st := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/listings", gin.H{
		"title": "A", "description": "B", "kind": "product", "deal_kind": "trade",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("authed create status = %d, body = %s", w.Code, w.Body.String())
	}

	st.Logout()
	w = doJSON(t, router, http.MethodPost, "/api/listings", gin.H{
		"title": "A", "description": "B", "kind": "product", "deal_kind": "trade",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthed create status = %d", w.Code)
	}
}

func TestDeleteMissingListingIsNoopSuccess(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodDelete, "/api/listings/does-not-exist", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestDeleteForeignListingForbidden(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodDelete, "/api/listings/2", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestHighlightInsufficientBalance(t *testing.T) {
	st := store.SeedState(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	st.Auth.User.WalletBalance = 1.00
	router, _ := newTestRouter(t, store.WithState(st))

	w := doJSON(t, router, http.MethodPost, "/api/listings/3/highlight", nil)
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want 402", w.Code)
	}
}

func TestRechargeValidation(t *testing.T) {
	router, st := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/wallet/recharge", gin.H{"amount": -5})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative amount status = %d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/wallet/recharge", gin.H{"amount": 50})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := st.Auth().User.WalletBalance; got != 300.00 {
		t.Fatalf("wallet balance = %v, want 300", got)
	}
}

func TestStatsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var payload struct {
		Stats struct {
			TotalRevenue float64 `json:"total_revenue"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Stats.TotalRevenue != 15450.50 {
		t.Fatalf("totalRevenue = %v", payload.Stats.TotalRevenue)
	}
}
