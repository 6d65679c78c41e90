package handlers

import (
	"net/http"
	"time"

	"podinfo/internal/models"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	started time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

// Health godoc
// @Summary Health check
// @Description Liveness probe; succeeds whenever the process is serving requests
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC(),
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}
