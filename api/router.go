package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/use-agent/brainhint/api/handler"
	"github.com/use-agent/brainhint/api/middleware"
	"github.com/use-agent/brainhint/config"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger → CORS
//	Proxy:   Auth (if enabled)
//
// Anything that is not an API route is served from the static directory.
func NewRouter(f handler.Fetcher, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(cors.Default())

	api := r.Group("/api")

	// Health — no auth required.
	api.GET("/health", handler.Health(startTime))

	proxy := api.Group("")
	if cfg.Auth.Enabled {
		proxy.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	proxy.GET("/proxy", handler.Proxy(f))

	r.NoRoute(handler.Static(cfg.Server.StaticDir))

	return r
}
