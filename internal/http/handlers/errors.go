package handlers

import (
	"errors"
	"net/http"

	"github.com/permutei/permutei-core/internal/platform/apierr"
)

// Precondition failures shared across handlers. The store reports these as
// guarded no-ops; the HTTP layer maps them to statuses here.
var (
	errNoSession = apierr.New(http.StatusUnauthorized, "not_authenticated",
		errors.New("no active session"))
	errNotOwner = apierr.New(http.StatusForbidden, "not_owner",
		errors.New("listing belongs to another user"))
	errInsufficientBalance = apierr.New(http.StatusPaymentRequired, "insufficient_balance",
		errors.New("wallet balance too low"))
	errListingNotFound = apierr.New(http.StatusNotFound, "listing_not_found",
		errors.New("listing not found"))
	errConversationNotFound = apierr.New(http.StatusNotFound, "conversation_not_found",
		errors.New("conversation not found"))
)
