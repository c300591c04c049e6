package router

import (
	"github.com/labstack/echo/v4"

	"unilagyard/internal/adapter/api/handler"
	"unilagyard/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)
	files.POST("", fileHandler.UploadFile)
	files.DELETE("/:id", fileHandler.DeleteFile)
}
