package http2fp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/hpack"

	"github.com/hdbg/chromimic/internal/profiles"
)

// Dialer opens and TLS-handshakes one connection per call; internal/tlsfp.Build
// produces exactly this shape.
type Dialer func(ctx context.Context, network, addr string) (net.Conn, error)

// Transport is a minimal, single-stream-at-a-time HTTP/2 RoundTripper
// built directly on golang.org/x/net/http2's exported Framer and hpack
// Encoder/Decoder rather than http2.Transport. http2.Transport gives no
// control over SETTINGS order, the connection WINDOW_UPDATE, PRIORITY
// frames, or pseudo-header order — exactly the signal an HTTP/2
// fingerprint probe reads — so those details have to be produced by
// hand. What Transport deliberately does not reimplement is generic
// HTTP/2: no server push, no concurrent multiplexed streams, and no
// flow control beyond returning each received DATA frame's bytes with a
// WINDOW_UPDATE on the stream and on the connection.
// That plumbing belongs to the full x/net/http2 stack that
// http2.Transport already provides for non-fingerprinted traffic.
type Transport struct {
	Dial        Dialer
	Profile     profiles.HTTP2Profile
	PseudoOrder []string

	mu    sync.Mutex
	conns map[string]*conn
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	authority := req.URL.Host
	c, err := t.getConn(req.Context(), authority)
	if err != nil {
		return nil, err
	}
	return c.roundTrip(req, t.PseudoOrder)
}

func (t *Transport) getConn(ctx context.Context, authority string) (*conn, error) {
	t.mu.Lock()
	if t.conns == nil {
		t.conns = make(map[string]*conn)
	}
	if c, ok := t.conns[authority]; ok && !c.closed() {
		t.mu.Unlock()
		return c, nil
	}
	t.mu.Unlock()

	addr := authority
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = addr + ":443"
	}
	rawConn, err := t.Dial(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("http2fp: dial %s: %w", addr, err)
	}
	c, err := newConn(rawConn, t.Profile)
	if err != nil {
		_ = rawConn.Close()
		return nil, err
	}

	t.mu.Lock()
	t.conns[authority] = c
	t.mu.Unlock()
	return c, nil
}

// conn is one HTTP/2 connection. Requests are serialized: the
// fingerprint surface this module cares about lives entirely in
// connection setup, not in concurrent stream interleaving, so a single
// in-flight request at a time keeps the implementation small without
// losing fidelity.
type conn struct {
	nc     net.Conn
	fr     *http2.Framer
	henc   *hpack.Encoder
	hbuf   *bytes.Buffer
	nextID uint32

	mu   sync.Mutex
	dead bool
}

func newConn(nc net.Conn, profile profiles.HTTP2Profile) (*conn, error) {
	if _, err := nc.Write([]byte(http2.ClientPreface)); err != nil {
		return nil, fmt.Errorf("http2fp: write preface: %w", err)
	}

	fr := http2.NewFramer(nc, bufio.NewReaderSize(nc, 32*1024))

	settings := orderedSettings(profile)
	if err := fr.WriteSettings(settings...); err != nil {
		return nil, fmt.Errorf("http2fp: write settings: %w", err)
	}
	if delta, ok := connectionWindowUpdateDelta(profile); ok {
		if err := fr.WriteWindowUpdate(0, delta); err != nil {
			return nil, fmt.Errorf("http2fp: write window update: %w", err)
		}
	}
	if profile.PriorityParam != (profiles.PriorityParam{}) {
		if err := fr.WritePriority(1, http2.PriorityParam{
			StreamDep: profile.PriorityParam.StreamDep,
			Exclusive: profile.PriorityParam.Exclusive,
			Weight:    profile.PriorityParam.Weight,
		}); err != nil {
			return nil, fmt.Errorf("http2fp: write priority: %w", err)
		}
	}
	for _, pf := range profile.PriorityFrames {
		if err := fr.WritePriority(pf.StreamID, http2.PriorityParam{
			StreamDep: pf.StreamDep,
			Exclusive: pf.Exclusive,
			Weight:    pf.Weight,
		}); err != nil {
			return nil, fmt.Errorf("http2fp: write priority frame: %w", err)
		}
	}

	hbuf := &bytes.Buffer{}
	henc := hpack.NewEncoder(hbuf)
	if profile.HeaderTableSize != nil {
		henc.SetMaxDynamicTableSize(*profile.HeaderTableSize)
	}

	c := &conn{nc: nc, fr: fr, henc: henc, hbuf: hbuf, nextID: 1}
	if err := c.awaitSettingsAck(); err != nil {
		return nil, err
	}
	return c, nil
}

// awaitSettingsAck drains frames until the server's SETTINGS frame (and
// this client's own SETTINGS ack requirement) are satisfied. A real
// server typically sends its SETTINGS frame before acking the client's;
// this loop tolerates either order and ignores frame types it doesn't
// need to act on yet.
func (c *conn) awaitSettingsAck() error {
	sawServerSettings := false
	for !sawServerSettings {
		f, err := c.fr.ReadFrame()
		if err != nil {
			return fmt.Errorf("http2fp: reading initial frames: %w", err)
		}
		switch fr := f.(type) {
		case *http2.SettingsFrame:
			if fr.IsAck() {
				continue
			}
			sawServerSettings = true
			if err := c.fr.WriteSettingsAck(); err != nil {
				return fmt.Errorf("http2fp: ack server settings: %w", err)
			}
		case *http2.GoAwayFrame:
			return fmt.Errorf("http2fp: server sent GOAWAY during handshake: %v", fr.ErrCode)
		}
	}
	return nil
}

func (c *conn) closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dead
}

func (c *conn) roundTrip(req *http.Request, pseudoOrder []string) (*http.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dead {
		return nil, fmt.Errorf("http2fp: connection closed")
	}

	streamID := c.nextID
	c.nextID += 2

	if err := encodeHeaderBlock(c.henc, c.hbuf, req, pseudoOrder, headerNamesOf(req)); err != nil {
		return nil, err
	}
	block := append([]byte(nil), c.hbuf.Bytes()...)

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("http2fp: read request body: %w", err)
		}
	}

	if err := c.fr.WriteHeaders(http2.HeadersFrameParam{
		StreamID:      streamID,
		BlockFragment: block,
		EndStream:     len(body) == 0,
		EndHeaders:    true,
	}); err != nil {
		c.dead = true
		return nil, fmt.Errorf("http2fp: write headers: %w", err)
	}
	if len(body) > 0 {
		if err := c.fr.WriteData(streamID, true, body); err != nil {
			c.dead = true
			return nil, fmt.Errorf("http2fp: write data: %w", err)
		}
	}

	return c.readResponse(req, streamID)
}

func (c *conn) readResponse(req *http.Request, streamID uint32) (*http.Response, error) {
	dec := hpack.NewDecoder(4096, nil)
	status := ""
	header := make(http.Header)
	var bodyBuf bytes.Buffer

	for {
		f, err := c.fr.ReadFrame()
		if err != nil {
			c.dead = true
			return nil, fmt.Errorf("http2fp: read frame: %w", err)
		}
		if f.Header().StreamID != streamID {
			switch fr := f.(type) {
			case *http2.SettingsFrame:
				if !fr.IsAck() {
					_ = c.fr.WriteSettingsAck()
				}
			case *http2.GoAwayFrame:
				c.dead = true
				return nil, fmt.Errorf("http2fp: server sent GOAWAY: %v", fr.ErrCode)
			}
			continue
		}
		switch fr := f.(type) {
		case *http2.HeadersFrame:
			fields, ferr := dec.DecodeFull(fr.HeaderBlockFragment())
			if ferr != nil {
				return nil, fmt.Errorf("http2fp: decode headers: %w", ferr)
			}
			for _, field := range fields {
				if field.Name == ":status" {
					status = field.Value
					continue
				}
				header.Add(field.Name, field.Value)
			}
			if fr.StreamEnded() {
				return c.buildResponse(req, status, header, &bodyBuf)
			}
		case *http2.DataFrame:
			bodyBuf.Write(fr.Data())
			if len(fr.Data()) > 0 {
				_ = c.fr.WriteWindowUpdate(streamID, uint32(len(fr.Data())))
				_ = c.fr.WriteWindowUpdate(0, uint32(len(fr.Data())))
			}
			if fr.StreamEnded() {
				return c.buildResponse(req, status, header, &bodyBuf)
			}
		case *http2.RSTStreamFrame:
			return nil, fmt.Errorf("http2fp: stream reset: %v", fr.ErrCode)
		}
	}
}

func (c *conn) buildResponse(req *http.Request, status string, header http.Header, body *bytes.Buffer) (*http.Response, error) {
	code := 200
	if status != "" {
		if _, err := fmt.Sscanf(status, "%d", &code); err != nil {
			return nil, fmt.Errorf("http2fp: parse :status %q: %w", status, err)
		}
	}
	return &http.Response{
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		StatusCode: code,
		Proto:      "HTTP/2.0",
		ProtoMajor: 2,
		ProtoMinor: 0,
		Header:     header,
		Body:       io.NopCloser(body),
		Request:    req,
	}, nil
}

func headerNamesOf(req *http.Request) []string {
	if names, ok := req.Context().Value(headerOrderCtxKey{}).([]string); ok {
		return names
	}
	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	return names
}

// headerOrderCtxKey is the context key the root package's dispatcher
// uses to thread the Header Installer's exact wire order down to the
// HPACK encoder, since http.Request carries no ordering of its own.
type headerOrderCtxKey struct{}

// WithHeaderOrder returns a context carrying the header wire order the
// HPACK encoder should follow for requests built with it.
func WithHeaderOrder(ctx context.Context, order []string) context.Context {
	return context.WithValue(ctx, headerOrderCtxKey{}, order)
}
