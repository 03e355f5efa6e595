package app

import (
	"github.com/permutei/permutei-core/internal/http/handlers"
	"github.com/permutei/permutei-core/internal/platform/logger"
	"github.com/permutei/permutei-core/internal/store"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Listing *handlers.ListingHandler
	Wallet  *handlers.WalletHandler
	Chat    *handlers.ChatHandler
	Admin   *handlers.AdminHandler
}

func wireHandlers(log *logger.Logger, st *store.Store) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  handlers.NewHealthHandler(),
		Auth:    handlers.NewAuthHandler(st),
		Listing: handlers.NewListingHandler(st),
		Wallet:  handlers.NewWalletHandler(st),
		Chat:    handlers.NewChatHandler(st),
		Admin:   handlers.NewAdminHandler(st),
	}
}
