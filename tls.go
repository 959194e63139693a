package chromimic

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/hdbg/chromimic/internal/tlsfp"
)

// alpnRoundTripper picks HTTP/1.1 or the fingerprinted HTTP/2 transport
// per connection, based on the ALPN protocol the uTLS handshake
// negotiated. A catalog profile advertises both "h2" and "http/1.1" in
// that preference order, but a server under test (or a middlebox) can
// still negotiate http/1.1 even when a browser would normally get h2,
// so the decision has to be made per connection rather than assumed
// from the profile.
type alpnRoundTripper struct {
	dispatched *dispatchedProfile
	h1         *http.Transport

	protoByHost sync.Map // host -> string, memoizes negotiatedProtocol
}

func newALPNRoundTripper(d *dispatchedProfile) *alpnRoundTripper {
	rt := &alpnRoundTripper{dispatched: d}
	rt.h1 = &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return d.connect(ctx, network, addr)
		},
		ForceAttemptHTTP2: false,
	}
	return rt
}

func (rt *alpnRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	proto, err := rt.negotiatedProtocol(req)
	if err != nil {
		return nil, err
	}
	switch proto {
	case "h2":
		return rt.dispatched.h2.RoundTrip(req)
	default:
		return rt.h1.RoundTrip(req)
	}
}

// negotiatedProtocol performs a throwaway handshake the first time a
// host is seen, purely to learn which ALPN protocol the server picked,
// then closes it and caches the result; the real connection used for
// the request is established by whichever transport ends up handling
// RoundTrip (http2fp.Transport and http.Transport both pool and reuse
// their own connections independently).
func (rt *alpnRoundTripper) negotiatedProtocol(req *http.Request) (string, error) {
	host := req.URL.Host
	if _, _, err := net.SplitHostPort(host); err != nil {
		host = host + ":443"
	}
	if v, ok := rt.protoByHost.Load(host); ok {
		return v.(string), nil
	}

	conn, err := rt.dispatched.connect(req.Context(), "tcp", host)
	if err != nil {
		return "", fmt.Errorf("chromimic: probe dial %s: %w", host, err)
	}
	proto := tlsfp.NegotiatedALPN(conn)
	_ = conn.Close()
	if proto == "" {
		proto = "http/1.1"
	}
	rt.protoByHost.Store(host, proto)
	return proto, nil
}
