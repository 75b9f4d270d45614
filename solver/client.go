package solver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/use-agent/brainhint/models"
)

// RelayClient calls the relay's /api/proxy endpoint.
type RelayClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// ClientOption configures a RelayClient.
type ClientOption func(*RelayClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(rc *RelayClient) { rc.client = c }
}

// WithAPIKey sends key in the X-API-Key header.
func WithAPIKey(key string) ClientOption {
	return func(rc *RelayClient) { rc.apiKey = key }
}

// NewRelayClient creates a client for the relay at baseURL.
func NewRelayClient(baseURL string, opts ...ClientOption) *RelayClient {
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	rc := &RelayClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// Proxy asks the relay to fetch target and returns the raw HTML.
// Every failure is a *TransportError.
func (rc *RelayClient) Proxy(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ProxyURL(rc.baseURL, target), nil)
	if err != nil {
		return "", &TransportError{Category: CategoryGeneric, Message: "failed to build relay request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if rc.apiKey != "" {
		req.Header.Set("X-API-Key", rc.apiKey)
	}

	resp, err := rc.client.Do(req)
	if err != nil {
		return "", &TransportError{Category: CategoryConnection, Message: "failed to reach relay", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Category: CategoryGeneric, Status: resp.StatusCode, Message: "failed to read relay response", Err: err}
	}

	var pr models.ProxyResponse
	decodeErr := json.Unmarshal(body, &pr)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		if decodeErr == nil && pr.Error != "" {
			msg += " (" + pr.Error + ")"
		}
		return "", &TransportError{Category: categoryForStatus(resp.StatusCode), Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return "", &TransportError{Category: CategoryGeneric, Status: resp.StatusCode, Message: "failed to decode relay response", Err: decodeErr}
	}
	if !pr.Success {
		msg := pr.Error
		if msg == "" {
			msg = "Failed to fetch data from proxy"
		}
		return "", &TransportError{Category: CategoryGeneric, Status: resp.StatusCode, Message: msg}
	}

	return pr.Data, nil
}

// Health calls GET /api/health.
func (rc *RelayClient) Health(ctx context.Context) (*models.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rc.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("solver: build health request: %w", err)
	}

	resp, err := rc.client.Do(req)
	if err != nil {
		return nil, &TransportError{Category: CategoryConnection, Message: "failed to reach relay", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Category: categoryForStatus(resp.StatusCode),
			Status:   resp.StatusCode,
			Message:  fmt.Sprintf("relay unhealthy: status %d", resp.StatusCode),
		}
	}

	var hr models.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&hr); err != nil {
		return nil, fmt.Errorf("solver: decode health response: %w", err)
	}
	return &hr, nil
}
