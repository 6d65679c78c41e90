package handlers

import (
	"context"
	"log"
	"net/http"

	"podinfo/internal/models"

	"github.com/gin-gonic/gin"
)

// InfoCollector produces a fresh host and pod description
type InfoCollector interface {
	Collect(ctx context.Context) (*models.Info, error)
}

// InfoHandler serves the welcome and /info routes
type InfoHandler struct {
	collector InfoCollector
}

// NewInfoHandler creates a new InfoHandler
func NewInfoHandler(collector InfoCollector) *InfoHandler {
	return &InfoHandler{collector: collector}
}

// Home godoc
// @Summary Welcome message
// @Description Returns a plain text welcome message
// @Tags info
// @Produce plain
// @Success 200 {string} string "Welcome to Kubernetes Test Application. Use /info endpoint to see pod details."
// @Router / [get]
func (h *InfoHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, models.WelcomeMessage)
}

// Info godoc
// @Summary Pod and host information
// @Description Returns hostname, IP address, platform, runtime version, current UTC time and the pod name, node name and namespace
// @Tags info
// @Produce json
// @Success 200 {object} models.Info
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Host introspection failed"
// @Router /info [get]
func (h *InfoHandler) Info(c *gin.Context) {
	info, err := h.collector.Collect(c.Request.Context())
	if err != nil {
		log.Printf("Failed to collect host info: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}
