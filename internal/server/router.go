package server

import (
	"github.com/gin-gonic/gin"

	"github.com/permutei/permutei-core/internal/http/handlers"
	"github.com/permutei/permutei-core/internal/http/middleware"
	"github.com/permutei/permutei-core/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	HealthHandler  *handlers.HealthHandler
	AuthHandler    *handlers.AuthHandler
	ListingHandler *handlers.ListingHandler
	WalletHandler  *handlers.WalletHandler
	ChatHandler    *handlers.ChatHandler
	AdminHandler   *handlers.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS())

	router.GET("/healthz", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/auth", cfg.AuthHandler.GetAuth)
		api.POST("/auth/login", cfg.AuthHandler.Login)
		api.POST("/auth/logout", cfg.AuthHandler.Logout)

		api.GET("/listings", cfg.ListingHandler.List)
		api.POST("/listings", cfg.ListingHandler.Create)
		api.DELETE("/listings/:id", cfg.ListingHandler.Delete)
		api.POST("/listings/:id/highlight", cfg.ListingHandler.Highlight)
		api.POST("/listings/:id/favorite", cfg.ListingHandler.ToggleFavorite)
		api.POST("/listings/:id/proposal", cfg.ListingHandler.SendProposal)

		api.POST("/wallet/recharge", cfg.WalletHandler.Recharge)
		api.POST("/subscription", cfg.WalletHandler.Subscribe)

		api.GET("/conversations", cfg.ChatHandler.List)
		api.POST("/conversations/:id/messages", cfg.ChatHandler.SendMessage)

		api.GET("/stats", cfg.AdminHandler.Stats)
	}

	return router
}
