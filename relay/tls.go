package relay

import (
	"context"
	"crypto/x509"
	"fmt"
	"log/slog"
	"net"

	tls "github.com/refraction-networking/utls"
)

// h1ChromeHello is the Chrome ClientHello the relay presents to upstream
// sites, with ALPN offering http/1.1 alone. It is nil if the preset could
// not be expanded, in which case dials use HelloChrome_Auto directly.
var h1ChromeHello *tls.ClientHelloSpec

func init() {
	spec, err := tls.UTLSIdToSpec(tls.HelloChrome_Auto)
	if err != nil {
		slog.Warn("relay: chrome hello unavailable, using preset", "error", err)
		return
	}
	for i, ext := range spec.Extensions {
		alpn, ok := ext.(*tls.ALPNExtension)
		if !ok {
			continue
		}
		alpn.AlpnProtocols = []string{"http/1.1"}
		spec.Extensions[i] = alpn
		break
	}
	h1ChromeHello = &spec
}

// newChromeTLSDialer returns the transport's DialTLSContext. Upstream sites
// see a Chrome handshake, so walkthrough pages behind bot filters answer the
// relay as they would a browser.
//
// http.Transport only speaks HTTP/1.1 over a non-crypto/tls conn, so a
// connection that negotiated anything else is refused.
func newChromeTLSDialer(dialer *net.Dialer, rootCAs *x509.CertPool) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		raw, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		host, _, _ := net.SplitHostPort(addr)
		cfg := &tls.Config{ServerName: host, RootCAs: rootCAs}

		var conn *tls.UConn
		if h1ChromeHello != nil {
			conn = tls.UClient(raw, cfg, tls.HelloCustom)
			if err := conn.ApplyPreset(h1ChromeHello); err != nil {
				raw.Close()
				return nil, fmt.Errorf("relay: chrome hello for %s: %w", host, err)
			}
		} else {
			conn = tls.UClient(raw, cfg, tls.HelloChrome_Auto)
		}

		if err := conn.HandshakeContext(ctx); err != nil {
			raw.Close()
			return nil, fmt.Errorf("relay: tls handshake with %s: %w", host, err)
		}
		if proto := conn.ConnectionState().NegotiatedProtocol; proto != "" && proto != "http/1.1" {
			conn.Close()
			return nil, fmt.Errorf("relay: %s negotiated %q, only http/1.1 is supported", host, proto)
		}
		return conn, nil
	}
}
