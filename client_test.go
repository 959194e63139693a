package chromimic

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNewClientDefaultsToChrome126(t *testing.T) {
	c := NewClient()
	if c.dispatched.id != Chrome126 {
		t.Errorf("expected default Chrome126, got %v", c.dispatched.id)
	}
}

func TestImpersonateSwitchesProfile(t *testing.T) {
	c := NewClient()
	if err := c.Impersonate(Safari17_4_1); err != nil {
		t.Fatalf("Impersonate: %v", err)
	}
	if c.dispatched.id != Safari17_4_1 {
		t.Errorf("expected Safari17_4_1, got %v", c.dispatched.id)
	}
}

func TestImpersonateInvalidLeavesPreviousProfile(t *testing.T) {
	c := NewClient()
	before := c.dispatched.id
	if err := c.Impersonate(Impersonate(-1)); err == nil {
		t.Fatal("expected an error")
	}
	if c.dispatched.id != before {
		t.Errorf("expected profile to remain %v after a failed Impersonate, got %v", before, c.dispatched.id)
	}
}

func TestDoWithoutImpersonateFails(t *testing.T) {
	c := &Client{logger: &emptyLogger{}}
	req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
	if _, err := c.Do(req); err == nil {
		t.Fatal("expected an error when no profile is dispatched")
	}
}

// TestLiveFetch exercises a real TLS handshake and HTTP/2 round trip
// against a public fingerprinting endpoint. It is skipped under -short
// since it depends on network access and a third-party service's
// availability.
func TestLiveFetch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live network test in -short mode")
	}
	c := NewClient()
	c.SetTimeout(10 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := c.Get(ctx, "https://tls.peet.ws/api/all")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
