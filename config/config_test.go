package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Relay.Timeout != 10*time.Second {
		t.Errorf("Relay.Timeout = %v, want 10s", cfg.Relay.Timeout)
	}
	if cfg.Relay.MaxRedirects != 5 {
		t.Errorf("Relay.MaxRedirects = %d, want 5", cfg.Relay.MaxRedirects)
	}
	if !cfg.Relay.ChromeTLS {
		t.Error("Relay.ChromeTLS should default to true")
	}
	if cfg.Auth.Enabled {
		t.Error("Auth.Enabled should default to false")
	}
	if cfg.Relay.UserAgent != DefaultUserAgent {
		t.Errorf("Relay.UserAgent = %q, want default", cfg.Relay.UserAgent)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BRAINHINT_PORT", "8081")
	t.Setenv("BRAINHINT_RELAY_TIMEOUT", "3s")
	t.Setenv("BRAINHINT_CHROME_TLS", "false")
	t.Setenv("BRAINHINT_API_KEYS", " a, b ,,c")

	cfg := Load()

	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Relay.Timeout != 3*time.Second {
		t.Errorf("Relay.Timeout = %v, want 3s", cfg.Relay.Timeout)
	}
	if cfg.Relay.ChromeTLS {
		t.Error("Relay.ChromeTLS should be false")
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(cfg.Auth.APIKeys, want) {
		t.Errorf("Auth.APIKeys = %v, want %v", cfg.Auth.APIKeys, want)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("BRAINHINT_PORT", "not-a-port")
	t.Setenv("BRAINHINT_RELAY_TIMEOUT", "forever")

	cfg := Load()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want fallback 3000", cfg.Server.Port)
	}
	if cfg.Relay.Timeout != 10*time.Second {
		t.Errorf("Relay.Timeout = %v, want fallback 10s", cfg.Relay.Timeout)
	}
}
