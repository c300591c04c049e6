package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"unilagyard/internal/infrastructure/pubsub"
)

type HealthHandler struct {
	broker *pubsub.ChatEventBroker
}

var healthHandler *HealthHandler

func NewHealthHandler(broker *pubsub.ChatEventBroker) *HealthHandler {
	return &HealthHandler{
		broker: broker,
	}
}

func SetupHealthHandler(broker *pubsub.ChatEventBroker) {
	healthHandler = NewHealthHandler(broker)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckRedisHealth(c echo.Context) error {
	if h.broker == nil {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "Redis not configured, running single-instance",
		})
	}

	if err := h.broker.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Redis connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Redis connected",
	})
}
