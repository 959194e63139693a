package http2fp

import (
	"bytes"
	"net/http"
	"testing"

	"golang.org/x/net/http2/hpack"

	"github.com/hdbg/chromimic/internal/profiles"
)

func TestOrderedSettingsOmitsNilFields(t *testing.T) {
	p := profiles.HTTP2Profile{
		EnablePush:              boolp(false),
		InitialStreamWindowSize: u32p(16777216),
	}
	settings := orderedSettings(p)
	if len(settings) != 2 {
		t.Fatalf("expected 2 settings, got %d: %+v", len(settings), settings)
	}
	if settings[0].ID.String() != "ENABLE_PUSH" {
		t.Errorf("expected ENABLE_PUSH first, got %v", settings[0].ID)
	}
}

func TestOrderedSettingsPreservesProfileOrder(t *testing.T) {
	p := profiles.HTTP2Profile{
		HeaderTableSize:      u32p(65536),
		EnablePush:           boolp(false),
		MaxConcurrentStreams: u32p(1000),
	}
	settings := orderedSettings(p)
	if len(settings) != 3 {
		t.Fatalf("expected 3 settings, got %d", len(settings))
	}
	wantOrder := []string{"HEADER_TABLE_SIZE", "ENABLE_PUSH", "MAX_CONCURRENT_STREAMS"}
	for i, s := range settings {
		if s.ID.String() != wantOrder[i] {
			t.Errorf("position %d: got %v, want %s", i, s.ID, wantOrder[i])
		}
	}
}

func TestConnectionWindowUpdateDelta(t *testing.T) {
	p := profiles.HTTP2Profile{InitialConnectionWindowSize: u32p(15663105)}
	delta, ok := connectionWindowUpdateDelta(p)
	if !ok {
		t.Fatal("expected a window update")
	}
	if delta != 15663105-65535 {
		t.Errorf("unexpected delta %d", delta)
	}

	if _, ok := connectionWindowUpdateDelta(profiles.HTTP2Profile{}); ok {
		t.Fatal("expected no window update when unset")
	}
}

func TestEncodeHeaderBlockPseudoHeaderOrder(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://example.com/path?x=1", nil)
	req.Header.Set("X-Test", "value")

	var buf bytes.Buffer
	enc := hpack.NewEncoder(&buf)

	order := safariPseudoHeaderOrder
	if err := encodeHeaderBlock(enc, &buf, req, order, []string{"X-Test"}); err != nil {
		t.Fatalf("encodeHeaderBlock: %v", err)
	}

	dec := hpack.NewDecoder(4096, nil)
	fields, err := dec.DecodeFull(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeFull: %v", err)
	}
	if len(fields) < 5 {
		t.Fatalf("expected at least 5 fields, got %d", len(fields))
	}
	gotPseudo := []string{fields[0].Name, fields[1].Name, fields[2].Name, fields[3].Name}
	for i, name := range order {
		if gotPseudo[i] != name {
			t.Errorf("pseudo-header %d: got %s, want %s", i, gotPseudo[i], name)
		}
	}
	if fields[4].Name != "x-test" {
		t.Errorf("expected lowercased regular header, got %s", fields[4].Name)
	}
}

func TestEncodeHeaderBlockDropsConnectionHeaders(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://example.com/", nil)
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Host", "example.com")

	var buf bytes.Buffer
	enc := hpack.NewEncoder(&buf)
	if err := encodeHeaderBlock(enc, &buf, req, DefaultPseudoHeaderOrder, []string{"Connection", "Host"}); err != nil {
		t.Fatalf("encodeHeaderBlock: %v", err)
	}
	dec := hpack.NewDecoder(4096, nil)
	fields, err := dec.DecodeFull(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeFull: %v", err)
	}
	for _, f := range fields {
		if f.Name == "connection" || f.Name == "host" {
			t.Errorf("expected %q to be dropped from the HTTP/2 header block", f.Name)
		}
	}
}

func TestValidateRejectsZeroMaxConcurrentStreams(t *testing.T) {
	if err := Validate(profiles.HTTP2Profile{MaxConcurrentStreams: u32p(0)}); err == nil {
		t.Fatal("expected an error for a zero MaxConcurrentStreams")
	}
}

func TestValidateRejectsOversizedWindow(t *testing.T) {
	if err := Validate(profiles.HTTP2Profile{InitialStreamWindowSize: u32p(1 << 31)}); err == nil {
		t.Fatal("expected an error for a window size over 2^31-1")
	}
}

func TestValidateAcceptsNilFields(t *testing.T) {
	if err := Validate(profiles.HTTP2Profile{}); err != nil {
		t.Errorf("expected no error for an all-nil profile, got %v", err)
	}
}

func TestValidateAcceptsCatalogShapedProfile(t *testing.T) {
	p := profiles.HTTP2Profile{
		HeaderTableSize:             u32p(65536),
		MaxConcurrentStreams:        u32p(1000),
		InitialStreamWindowSize:     u32p(6291456),
		InitialConnectionWindowSize: u32p(15663105),
		MaxHeaderListSize:           u32p(262144),
	}
	if err := Validate(p); err != nil {
		t.Errorf("expected a realistic Chrome-shaped profile to validate, got %v", err)
	}
}

func boolp(v bool) *bool    { return &v }
func u32p(v uint32) *uint32 { return &v }
