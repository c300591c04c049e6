package router

import (
	"github.com/labstack/echo/v4"

	"unilagyard/internal/adapter/api/handler"
	"unilagyard/internal/adapter/api/middleware"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	e.GET("/v1/plans", paymentHandler.ListPlans)

	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)
	payments.GET("", paymentHandler.ListMyPayments)
	payments.POST("/initialize", paymentHandler.InitializePayment)
	payments.POST("/complete", paymentHandler.CompletePayment)
}
