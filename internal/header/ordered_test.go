package header

import (
	"net/http"
	"testing"
)

func newTestRequest() *http.Request {
	req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
	if err != nil {
		panic(err)
	}
	return req
}

func defaults() []Pair {
	return []Pair{
		{"sec-ch-ua-platform", `"Windows"`},
		{"User-Agent", "chromimic-test/1.0"},
		{"Accept", "*/*"},
		{"Accept-Encoding", "gzip, deflate, br"},
	}
}

func TestOverridePreservesPosition(t *testing.T) {
	o := New(defaults())
	o.Override("user-agent", "custom-ua/2.0")

	if got := o.Get("User-Agent"); got != "custom-ua/2.0" {
		t.Fatalf("Get(User-Agent) = %q", got)
	}
	names := o.Names()
	if names[1] != "User-Agent" {
		t.Fatalf("expected User-Agent to stay at index 1, got order %v", names)
	}
}

func TestOverrideAppendsNewHeader(t *testing.T) {
	o := New(defaults())
	o.Override("X-Request-Id", "abc123")

	names := o.Names()
	if names[len(names)-1] != "X-Request-Id" {
		t.Fatalf("expected new header appended last, got %v", names)
	}
}

func TestApplyToRequestPreservesCasing(t *testing.T) {
	o := New([]Pair{{"sec-ch-ua-mobile", "?0"}})
	req := newTestRequest()
	o.ApplyToRequest(req)

	if _, ok := req.Header["sec-ch-ua-mobile"]; !ok {
		t.Fatal("expected exact casing sec-ch-ua-mobile to survive ApplyToRequest")
	}
	if got := req.Header["sec-ch-ua-mobile"]; len(got) != 1 || got[0] != "?0" {
		t.Fatal("expected the value to be stored under the exact-cased key")
	}
}

func TestDel(t *testing.T) {
	o := New(defaults())
	o.Del("accept")
	if o.Get("Accept") != "" {
		t.Fatal("expected Accept removed")
	}
	if o.Len() != 3 {
		t.Fatalf("expected 3 remaining entries, got %d", o.Len())
	}
}
