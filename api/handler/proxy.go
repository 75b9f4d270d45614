package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/brainhint/models"
	"github.com/use-agent/brainhint/relay"
)

// Fetcher retrieves a page for the proxy endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, targetURL string) (*relay.Result, error)
}

// Proxy returns a handler for GET /api/proxy?url=<target>.
//
// Flow:
//  1. Reject a missing url parameter with 400 before any network call.
//  2. Fetcher.Fetch → raw body + status.
//  3. Success → 200 with the body verbatim; failure → structured error with
//     the status chosen by statusFor.
func Proxy(f Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := c.Query("url")
		if target == "" {
			respondError(c, target, models.NewRelayError(models.KindInvalidInput, models.MsgURLRequired, http.StatusBadRequest, nil))
			return
		}

		slog.Info("proxying request", "url", target)

		result, err := f.Fetch(c.Request.Context(), target)
		if err != nil {
			respondError(c, target, err)
			return
		}

		slog.Info("proxy fetch succeeded",
			"url", target,
			"status", result.StatusCode,
			"bytes", len(result.HTML),
		)
		if result.Truncated {
			slog.Warn("upstream body truncated", "url", target, "bytes", len(result.HTML))
		}

		c.JSON(http.StatusOK, models.ProxySuccess{
			Success:    true,
			Data:       result.HTML,
			Status:     result.StatusCode,
			StatusText: result.StatusText,
		})
	}
}

// respondError maps a RelayError to the correct HTTP status code and writes
// a structured JSON error response.
func respondError(c *gin.Context, target string, err error) {
	var relayErr *models.RelayError
	if !errors.As(err, &relayErr) {
		relayErr = models.NewRelayError(models.KindRequestSetup, models.MsgRequestSetup, 0, err)
	}

	slog.Warn("proxy fetch failed",
		"url", target,
		"kind", relayErr.Kind,
		"status", relayErr.Status,
		"error", err,
	)

	c.JSON(statusFor(relayErr), relayErr.ToResponse())
}

// statusFor translates a relay failure into the HTTP status of the response.
func statusFor(e *models.RelayError) int {
	switch e.Kind {
	case models.KindInvalidInput:
		return http.StatusBadRequest // 400
	case models.KindUpstreamHTTP:
		if e.Status >= http.StatusBadRequest && e.Status <= 599 {
			return e.Status
		}
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
