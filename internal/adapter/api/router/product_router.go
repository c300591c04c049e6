package router

import (
	"github.com/labstack/echo/v4"

	"unilagyard/internal/adapter/api/handler"
	"unilagyard/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	// Feed and product detail are public.
	e.GET("/v1/products", productHandler.Feed)
	e.GET("/v1/products/:id", productHandler.GetProduct)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.GET("", productHandler.ListMyProducts)
	myProducts.POST("", productHandler.CreateProduct)
	myProducts.PUT("/:id", productHandler.UpdateProduct)
	myProducts.DELETE("/:id", productHandler.DeleteProduct)

	saved := e.Group("/v1/saved-products")
	saved.Use(authMiddleware.Authenticate)
	saved.GET("", productHandler.ListSavedProducts)
	saved.POST("/:id", productHandler.SaveProduct)
	saved.DELETE("/:id", productHandler.UnsaveProduct)
}
