package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/brainhint/models"
)

const (
	msgMissingKey = "missing API key: send the X-API-Key header, Authorization: Bearer <key>, or ?api_key=<key>"
	msgInvalidKey = "invalid API key: check the value sent in X-API-Key, Authorization or ?api_key="
)

// Auth guards the proxy endpoint with a static key list. A key is read from
// X-API-Key, then Authorization: Bearer, then the api_key query parameter,
// which lets a plain browser page call the relay.
//
// With no keys configured every request passes.
func Auth(apiKeys []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			allowed[k] = true
		}
	}
	if len(allowed) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		switch key := requestKey(c); {
		case key == "":
			reject(c, msgMissingKey)
		case !allowed[key]:
			reject(c, msgInvalidKey)
		default:
			c.Set("api_key", key)
			c.Next()
		}
	}
}

func reject(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ProxyResponse{Success: false, Error: msg})
}

func requestKey(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	if bearer, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return bearer
	}
	return c.Query("api_key")
}
