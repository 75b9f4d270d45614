package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/brainhint/models"
)

// isoMillis matches the millisecond ISO-8601 form browsers produce.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Health returns a handler for GET /api/health.
func Health(startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "OK",
			Message:   "CORS Proxy Server is running",
			Timestamp: time.Now().UTC().Format(isoMillis),
			Uptime:    time.Since(startTime).Round(time.Second).String(),
		})
	}
}
