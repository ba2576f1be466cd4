package server

import (
	"context"
	"net/http"
	"time"

	"commonhub/internal/api"
	"commonhub/internal/logger"
	"commonhub/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type QueueStats interface {
	QueueLength(ctx context.Context) int64
}

// @Summary      Health check
// @Description  Reports database reachability and the number of undelivered booking events
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /health [get]
func Health(database Pinger, queue QueueStats) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp := api.HealthResponse{Status: "ok", Database: "ok"}
		code := http.StatusOK

		if database != nil {
			if err := database.PingContext(ctx); err != nil {
				logger.Warn("Health check: database unreachable", "error", err)
				resp.Status = "degraded"
				resp.Database = "unreachable"
				code = http.StatusServiceUnavailable
			}
		}

		if queue != nil {
			resp.EventQueue = queue.QueueLength(ctx)
			metrics.SetEventQueueLength(resp.EventQueue)
		}

		c.JSON(code, resp)
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
