package router

import (
	"github.com/labstack/echo/v4"

	"unilagyard/internal/adapter/api/handler"
	"unilagyard/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/sync", authHandler.SyncProfile)
	protected.GET("/me", authHandler.Me)
}
