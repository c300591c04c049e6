package router

import (
	"github.com/labstack/echo/v4"

	"unilagyard/internal/adapter/api/handler"
	"unilagyard/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/stats", adminHandler.GetDashboardStats)

	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users/:id/ban", adminHandler.BanUser)
	admin.POST("/users/:id/unban", adminHandler.UnbanUser)

	admin.GET("/products", adminHandler.ListProducts)
	admin.POST("/products/:id/deactivate", adminHandler.DeactivateProduct)

	admin.GET("/reports", adminHandler.ListReports)
	admin.POST("/reports/:id/resolve", adminHandler.ResolveReport)
	admin.POST("/reports/:id/dismiss", adminHandler.DismissReport)

	admin.GET("/conversations", adminHandler.ListConversations)

	admin.GET("/verifications", adminHandler.ListVerifications)
	admin.POST("/verifications/:userId/approve", adminHandler.ApproveVerification)
	admin.POST("/verifications/:userId/reject", adminHandler.RejectVerification)
}
