// Package relay performs outbound page fetches on behalf of the browser
// client so that cross-origin pages can be read through /api/proxy.
package relay

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/use-agent/brainhint/config"
	"github.com/use-agent/brainhint/models"
)

// Result is the output of a successful relay fetch.
type Result struct {
	HTML       string
	StatusCode int
	StatusText string
	FinalURL   string

	// Truncated is set when the body was longer than MaxBodyBytes and HTML
	// holds only the first MaxBodyBytes of it.
	Truncated bool
}

// Relay fetches pages with browser-like headers, a fixed timeout and a
// bounded redirect budget. It is safe for concurrent use.
type Relay struct {
	client *http.Client
	cfg    config.RelayConfig
}

// New creates a Relay from the given configuration.
//
// With ChromeTLS on, HTTP(S)_PROXY is ignored: a CONNECT tunnel would be
// wrapped in Go's own TLS and the Chrome ClientHello would never be sent.
func New(cfg config.RelayConfig) *Relay {
	return newRelay(cfg, nil)
}

// newRelay is New with an explicit trust store for the Chrome TLS dialer.
// A nil rootCAs uses the system pool.
func newRelay(cfg config.RelayConfig, rootCAs *x509.CertPool) *Relay {
	dialer := &net.Dialer{Timeout: cfg.Timeout, KeepAlive: 30 * time.Second}
	transport := &http.Transport{
		DialContext: dialer.DialContext,

		// Accept-Encoding is set explicitly, so bodies are decoded by decodeBody.
		DisableCompression: true,
		ForceAttemptHTTP2:  false,

		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: cfg.Timeout,
	}
	if cfg.ChromeTLS {
		transport.DialTLSContext = newChromeTLSDialer(dialer, rootCAs)
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}

	maxRedirects := cfg.MaxRedirects
	return &Relay{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// Fetch retrieves targetURL and returns its body verbatim.
//
// Every failure is a *models.RelayError whose Kind tells the caller whether
// the remote answered with a failing status, never answered, or whether the
// request could not be built at all.
func (r *Relay) Fetch(ctx context.Context, targetURL string) (*Result, error) {
	if strings.TrimSpace(targetURL) == "" {
		return nil, models.NewRelayError(models.KindInvalidInput, models.MsgURLRequired, http.StatusBadRequest, nil)
	}

	req, err := r.newRequest(ctx, targetURL)
	if err != nil {
		return nil, models.NewRelayError(models.KindRequestSetup, models.MsgRequestSetup, 0, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, models.NewRelayError(models.KindNoResponse, models.MsgNoResponse, 0, err)
	}
	defer resp.Body.Close()

	statusText := reasonPhrase(resp)
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, models.UpstreamError(resp.StatusCode, statusText)
	}

	body, truncated, err := readBody(resp, r.cfg.MaxBodyBytes)
	if err != nil {
		return nil, models.NewRelayError(models.KindNoResponse, models.MsgNoResponse, 0, err)
	}

	return &Result{
		HTML:       string(body),
		StatusCode: resp.StatusCode,
		StatusText: statusText,
		FinalURL:   resp.Request.URL.String(),
		Truncated:  truncated,
	}, nil
}

// newRequest builds the outbound GET with headers emulating a desktop browser.
func (r *Relay) newRequest(ctx context.Context, targetURL string) (*http.Request, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("relay: parse url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("relay: %q is not an absolute URL", targetURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("relay: unsupported protocol scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("User-Agent", r.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	return req, nil
}

// readBody decodes the response body and reads at most maxBytes of it.
// truncated reports whether more decoded bytes were left unread.
func readBody(resp *http.Response, maxBytes int64) (body []byte, truncated bool, err error) {
	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotModified || resp.ContentLength == 0 {
		return []byte{}, false, nil
	}

	decoded, err := decodeBody(resp.Header.Get("Content-Encoding"), resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("relay: decode body: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	body, err = io.ReadAll(io.LimitReader(decoded, maxBytes+1))
	if err != nil {
		return nil, false, fmt.Errorf("relay: read body: %w", err)
	}
	if int64(len(body)) > maxBytes {
		return body[:maxBytes], true, nil
	}
	return body, false, nil
}

// reasonPhrase returns the status text sent by the server, falling back to
// the canonical text for the code.
func reasonPhrase(resp *http.Response) string {
	if text, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

// IsTimeout reports whether err came from the relay's deadline being hit.
func IsTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
