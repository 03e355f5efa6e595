package app

import (
	"github.com/gin-gonic/gin"

	"github.com/permutei/permutei-core/internal/platform/logger"
	"github.com/permutei/permutei-core/internal/server"
)

func wireRouter(log *logger.Logger, handlers Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		HealthHandler:  handlers.Health,
		AuthHandler:    handlers.Auth,
		ListingHandler: handlers.Listing,
		WalletHandler:  handlers.Wallet,
		ChatHandler:    handlers.Chat,
		AdminHandler:   handlers.Admin,
	})
}
