package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Relay  RelayConfig
	Auth   AuthConfig
	Log    LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 3000
	Mode string // "debug", "release", "test"; default: "release"

	// StaticDir is the directory served at "/" and for static assets.
	StaticDir string // default: "./web"

	// ShutdownGrace is how long in-flight requests get to finish on shutdown.
	ShutdownGrace time.Duration // default: 5s
}

// RelayConfig controls the outbound fetch performed by /api/proxy.
type RelayConfig struct {
	// Timeout bounds the whole outbound request, body included.
	Timeout time.Duration // default: 10s

	// MaxRedirects is the redirect budget per request.
	MaxRedirects int // default: 5

	// MaxBodyBytes caps how much of the upstream body is read.
	MaxBodyBytes int64 // default: 10 MiB

	// UserAgent is sent on every outbound request.
	UserAgent string

	// ChromeTLS dials HTTPS with a Chrome ClientHello instead of Go's default.
	ChromeTLS bool // default: true
}

// AuthConfig controls API key authentication on the proxy endpoint.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false

	// APIKeys is the list of accepted keys.
	APIKeys []string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// DefaultUserAgent is a desktop Chrome user agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:          envOr("BRAINHINT_HOST", "0.0.0.0"),
			Port:          envIntOr("BRAINHINT_PORT", 3000),
			Mode:          envOr("BRAINHINT_MODE", "release"),
			StaticDir:     envOr("BRAINHINT_STATIC_DIR", "./web"),
			ShutdownGrace: envDurationOr("BRAINHINT_SHUTDOWN_GRACE", 5*time.Second),
		},
		Relay: RelayConfig{
			Timeout:      envDurationOr("BRAINHINT_RELAY_TIMEOUT", 10*time.Second),
			MaxRedirects: envIntOr("BRAINHINT_MAX_REDIRECTS", 5),
			MaxBodyBytes: int64(envIntOr("BRAINHINT_MAX_BODY_BYTES", 10<<20)),
			UserAgent:    envOr("BRAINHINT_USER_AGENT", DefaultUserAgent),
			ChromeTLS:    envBoolOr("BRAINHINT_CHROME_TLS", true),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("BRAINHINT_AUTH_ENABLED", false),
			APIKeys: envSliceOr("BRAINHINT_API_KEYS", nil),
		},
		Log: LogConfig{
			Level:  envOr("BRAINHINT_LOG_LEVEL", "info"),
			Format: envOr("BRAINHINT_LOG_FORMAT", "text"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
