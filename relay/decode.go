package relay

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

// decodeBody wraps body in a decompressor matching the Content-Encoding.
// Unknown encodings are passed through untouched, and so is an empty body
// whatever its declared encoding.
func decodeBody(encoding string, body io.Reader) (io.Reader, error) {
	encoding = strings.ToLower(strings.TrimSpace(encoding))
	if encoding == "" || encoding == "identity" {
		return body, nil
	}

	br := bufio.NewReader(body)
	header, err := br.Peek(2)
	if len(header) == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return strings.NewReader(""), nil
		}
		return nil, err
	}

	switch encoding {
	case "gzip", "x-gzip":
		return gzip.NewReader(br)
	case "br":
		return brotli.NewReader(br), nil
	case "deflate":
		// Servers send either zlib-wrapped or raw deflate under this name.
		if len(header) == 2 && isZlibHeader(header) {
			return zlib.NewReader(br)
		}
		return flate.NewReader(br), nil
	default:
		return br, nil
	}
}

// isZlibHeader reports whether b starts a zlib stream (RFC 1950): deflate
// method with a header checksum divisible by 31.
func isZlibHeader(b []byte) bool {
	return b[0]&0x0f == 8 && (uint16(b[0])<<8|uint16(b[1]))%31 == 0
}
