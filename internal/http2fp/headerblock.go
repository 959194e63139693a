package http2fp

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/net/http2/hpack"
)

// DefaultPseudoHeaderOrder is the order golang.org/x/net/http2's own
// client uses. Chromium-derived browsers use the same order. Only Safari
// gets an order of its own here; every other family, OkHttp included,
// uses this one (see PseudoHeaderOrderFor).
var DefaultPseudoHeaderOrder = []string{":method", ":authority", ":scheme", ":path"}

// safariPseudoHeaderOrder matches WebKit's NetworkProcess, which writes
// :method before :scheme/:path/:authority in an order Chromium never
// uses — one of the more distinctive single bits of an HTTP/2
// fingerprint.
var safariPseudoHeaderOrder = []string{":method", ":scheme", ":path", ":authority"}

// PseudoHeaderOrderFor returns the pseudo-header send order for family,
// the String() form of the coarse chromimic.ClientProfile tag ("Chrome",
// "Safari", "Firefox", "OkHttp", "Edge"); http2fp does not import the
// root package, so the caller passes the family name instead of the enum.
func PseudoHeaderOrderFor(family string) []string {
	switch family {
	case "Safari":
		return safariPseudoHeaderOrder
	default:
		return DefaultPseudoHeaderOrder
	}
}

// encodeHeaderBlock HPACK-encodes req into a single block fragment:
// pseudo-headers first in pseudoOrder, then regular headers in the
// order req.Header's underlying Ordered view presents them (callers
// pass headerOrder, the exact wire order computed by internal/header).
func encodeHeaderBlock(enc *hpack.Encoder, buf *bytes.Buffer, req *http.Request, pseudoOrder []string, headerOrder []string) error {
	buf.Reset()

	authority := req.Host
	if authority == "" {
		authority = req.URL.Host
	}
	path := req.URL.RequestURI()
	if path == "" {
		path = "/"
	}

	pseudoValues := map[string]string{
		":method":    req.Method,
		":authority": authority,
		":scheme":    schemeOf(req),
		":path":      path,
	}
	for _, name := range pseudoOrder {
		v, ok := pseudoValues[name]
		if !ok {
			return fmt.Errorf("http2fp: unknown pseudo-header %q in order", name)
		}
		if err := enc.WriteField(hpack.HeaderField{Name: name, Value: v}); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(headerOrder))
	for _, name := range headerOrder {
		values := req.Header[name]
		if len(values) == 0 {
			continue
		}
		seen[name] = true
		for _, v := range values {
			if err := writeRegularField(enc, name, v); err != nil {
				return err
			}
		}
	}
	// Any header present on the request but absent from headerOrder
	// (set after the Header Installer ran) still goes out, in a stable
	// but otherwise unspecified order.
	var rest []string
	for name := range req.Header {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		for _, v := range req.Header[name] {
			if err := writeRegularField(enc, name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRegularField(enc *hpack.Encoder, name, value string) error {
	lower := strings.ToLower(name)
	if lower == "host" || lower == "connection" || lower == "upgrade" ||
		lower == "keep-alive" || lower == "proxy-connection" || lower == "transfer-encoding" {
		// Forbidden or meaningless over HTTP/2 (RFC 9113 §8.2.2); Host's
		// content travels in :authority instead.
		return nil
	}
	return enc.WriteField(hpack.HeaderField{Name: lower, Value: value})
}

func schemeOf(req *http.Request) string {
	if req.URL.Scheme != "" {
		return req.URL.Scheme
	}
	return "https"
}
