// Package handler exposes the ingestion endpoint over HTTP.
package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stresswatch/backend/internal/ingest"
	"stresswatch/backend/internal/stress/domain"
)

// maxBodyBytes bounds the CSV upload size.
const maxBodyBytes = 10 << 20 // 10MB

// Handler serves POST /v1/datasets/:id.
type Handler struct {
	pipeline  *ingest.Pipeline
	threshold float64
}

// NewHandler returns the ingestion handler. threshold is the configured
// stress cutoff applied to every submission.
func NewHandler(pipeline *ingest.Pipeline, threshold float64) *Handler {
	return &Handler{pipeline: pipeline, threshold: threshold}
}

// Register mounts the ingestion route on the given group.
func Register(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/datasets/:id", h.HandleIngest)
}

type stressAnalysis struct {
	StressScore       float64 `json:"stress_score"`
	Analysis          string  `json:"analysis"`
	ThresholdExceeded bool    `json:"threshold_exceeded"`
}

type ingestResponse struct {
	UserID         string         `json:"user_id"`
	StressAnalysis stressAnalysis `json:"stress_analysis"`
}

// HandleIngest reads the CSV body, runs the pipeline, and returns the
// verdict. Input-shape problems map to 4xx, dependency failures to 5xx.
func (h *Handler) HandleIngest(c *gin.Context) {
	recordID := c.Param("id")
	if recordID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing dataset id in path"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing CSV file in request body"})
		return
	}

	rec, err := h.pipeline.Ingest(c.Request.Context(), recordID, body, c.GetHeader("Content-Type"), h.threshold)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.Error("ingestion failed", "record_id", recordID, "error", err)
		} else {
			slog.Warn("ingestion rejected", "record_id", recordID, "error", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ingestResponse{
		UserID: rec.UserID,
		StressAnalysis: stressAnalysis{
			StressScore:       rec.StressScore,
			Analysis:          rec.Analysis,
			ThresholdExceeded: rec.ThresholdExceeded,
		},
	})
}

// statusFor maps pipeline error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrMalformedInput), errors.Is(err, domain.ErrInsufficientData):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateRecord):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAnalysisTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrAnalysisParse):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
