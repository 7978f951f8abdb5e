package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger verifica conectividad con el store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone el chequeo de salud del servicio.
type HealthHandler struct {
	logger *zap.Logger
	store  Pinger
}

func NewHealthHandler(logger *zap.Logger, store Pinger) *HealthHandler {
	return &HealthHandler{logger: logger, store: store}
}

// Check maneja GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("health check ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
