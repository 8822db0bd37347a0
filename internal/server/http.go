// Package server assembles the HTTP router: pipeline and alerts routes,
// health, metrics, and tracing middleware.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"stresswatch/backend/internal/alerts"
	alertshandler "stresswatch/backend/internal/alerts/handler"
	"stresswatch/backend/internal/ingest"
	ingesthandler "stresswatch/backend/internal/ingest/handler"
)

// serviceName labels traces emitted by the otelgin middleware.
const serviceName = "stresswatch"

// NewRouter builds the gin engine with all routes registered.
func NewRouter(pipeline *ingest.Pipeline, query *alerts.Query, threshold float64) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	ingesthandler.Register(v1, ingesthandler.NewHandler(pipeline, threshold))
	alertshandler.Register(v1, alertshandler.NewHandler(query))

	return r
}
