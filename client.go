package chromimic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/hdbg/chromimic/internal/decode"
	"github.com/hdbg/chromimic/internal/header"
	"github.com/hdbg/chromimic/internal/http2fp"
	"github.com/hdbg/chromimic/internal/tlsfp"
)

// Client impersonates one browser or HTTP-library fingerprint across
// every request it sends. The zero value is not usable; construct one
// with NewClient.
type Client struct {
	mu sync.RWMutex

	httpClient *http.Client
	dispatched *dispatchedProfile
	tlsOpts    tlsfp.Options

	logger Logger
}

// NewClient returns a Client impersonating Chrome126, the catalog's
// default, with cookies enabled.
func NewClient() *Client {
	c := &Client{logger: &emptyLogger{}}
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	c.httpClient = &http.Client{Jar: jar}
	if err := c.Impersonate(Chrome126); err != nil {
		// Chrome126 is a closed-enumeration constant with a guaranteed
		// catalog entry; a failure here means the catalog and the
		// enumeration have drifted apart, which is a programming error.
		panic(fmt.Sprintf("chromimic: NewClient: %v", err))
	}
	return c
}

// Impersonate switches the client to parrot id's TLS, HTTP/2, and
// header fingerprint on every subsequent request. Existing pooled
// connections are discarded since they were handshaked under the
// previous fingerprint.
func (c *Client) Impersonate(id Impersonate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, err := configure(id, c.tlsOpts)
	if err != nil {
		return err
	}
	c.dispatched = d
	c.httpClient.Transport = newALPNRoundTripper(d)
	logf(c.logger, "impersonating %s (%s)", id, id.Profile())
	return nil
}

// EnableECHGrease forces Encrypted-Client-Hello GREASE on or off,
// overriding whatever the current catalog profile specifies.
func (c *Client) EnableECHGrease(enable bool) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tlsOpts.ForceECHGrease = &enable
	c.reconfigureLocked()
	return c
}

// PermuteExtensions forces ClientHello extension permutation on or off,
// overriding whatever the current catalog profile specifies.
func (c *Client) PermuteExtensions(enable bool) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tlsOpts.ForcePermute = &enable
	c.reconfigureLocked()
	return c
}

// DangerAcceptInvalidCerts disables server certificate verification.
// Intended for testing against self-signed or staging endpoints; never
// enable this against traffic that needs to resist interception.
func (c *Client) DangerAcceptInvalidCerts(accept bool) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tlsOpts.InsecureSkipVerify = accept
	c.reconfigureLocked()
	return c
}

// reconfigureLocked rebuilds the dispatched profile after an override
// changes; c.mu must be held for writing.
func (c *Client) reconfigureLocked() {
	if c.dispatched == nil {
		return
	}
	d, err := configure(c.dispatched.id, c.tlsOpts)
	if err != nil {
		logf(c.logger, "chromimic: reconfigure failed, keeping previous profile: %v", err)
		return
	}
	c.dispatched = d
	c.httpClient.Transport = newALPNRoundTripper(d)
}

// CookieStore enables or disables the client's cookie jar.
func (c *Client) CookieStore(enable bool) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !enable {
		c.httpClient.Jar = nil
		return c
	}
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	c.httpClient.Jar = jar
	return c
}

// SetTimeout sets the per-request timeout applied by the underlying
// net/http.Client.
func (c *Client) SetTimeout(d time.Duration) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.httpClient.Timeout = d
	return c
}

// SetLogger installs a Logger that receives trace-level messages about
// profile dispatch; pass nil to silence logging.
func (c *Client) SetLogger(l Logger) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l == nil {
		l = &emptyLogger{}
	}
	c.logger = l
	return c
}

// ProfileEntry returns the catalog entry the client currently
// impersonates, primarily so callers can inspect or log the active
// fingerprint.
func (c *Client) ProfileEntry() ProfileEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dispatched.entry
}

// Get issues a GET request to url.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Post issues a POST request to url with the given body and content type.
func (c *Client) Post(ctx context.Context, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return c.Do(req)
}

// Do sends req after installing the current profile's default headers
// (Header Installer, §4.4): catalog defaults form the base layer in
// catalog order, any header already set on req overrides the matching
// default value in place, and the response body is transparently
// decompressed according to the Content-Encoding it comes back with.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.mu.RLock()
	d := c.dispatched
	logger := c.logger
	c.mu.RUnlock()
	if d == nil {
		return nil, fmt.Errorf("chromimic: client has no impersonated profile")
	}

	ordered := header.New(d.headers)
	ordered.MergeCallerHeaders(req.Header)
	if enc := acceptEncoding(d.entry.ContentEncodings); enc != "" && ordered.Get("Accept-Encoding") == "" {
		ordered.Add("Accept-Encoding", enc)
	}
	ordered.ApplyToRequest(req)

	ctx := http2fp.WithHeaderOrder(req.Context(), ordered.Names())
	req = req.WithContext(ctx)

	logf(logger, "%s %s via %s", req.Method, req.URL, d.id)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if body, derr := decode.Wrap(resp.Body, resp.Header.Get("Content-Encoding")); derr == nil {
		resp.Body = body
	}
	return resp, nil
}
