// Package handler exposes the alerts query endpoint over HTTP.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stresswatch/backend/internal/alerts"
	"stresswatch/backend/internal/stress/domain"
)

// Handler serves GET /v1/alerts.
type Handler struct {
	query *alerts.Query
}

// NewHandler returns the alerts handler.
func NewHandler(query *alerts.Query) *Handler {
	return &Handler{query: query}
}

// Register mounts the alerts route on the given group.
func Register(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/alerts", h.HandleList)
}

// HandleList returns all flagged records as a JSON array, oldest first.
// The array is always present, never null.
func (h *Handler) HandleList(c *gin.Context) {
	list, err := h.query.List(c.Request.Context())
	if err != nil {
		slog.Error("alerts query failed", "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrStoreUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}
