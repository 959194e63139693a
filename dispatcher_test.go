package chromimic

import (
	"testing"

	"github.com/hdbg/chromimic/internal/tlsfp"
)

func TestConfigureTotalOverEnumeration(t *testing.T) {
	for _, m := range impersonateTable {
		d, err := configure(m.id, tlsfp.Options{})
		if err != nil {
			t.Fatalf("configure(%v): %v", m.id, err)
		}
		if d.connect == nil {
			t.Errorf("%v: nil connector", m.id)
		}
		if d.h2 == nil {
			t.Errorf("%v: nil http2 transport", m.id)
		}
		if len(d.headers) == 0 {
			t.Errorf("%v: no default headers", m.id)
		}
	}
}

func TestConfigureRejectsInvalidImpersonate(t *testing.T) {
	if _, err := configure(Impersonate(9999), tlsfp.Options{}); err == nil {
		t.Fatal("expected an error for an out-of-range Impersonate value")
	}
}

func TestConfigureAppliesForceOverrides(t *testing.T) {
	permuteOff := false
	if _, err := configure(Chrome126, tlsfp.Options{ForcePermute: &permuteOff}); err != nil {
		t.Fatalf("configure with ForcePermute override: %v", err)
	}
	echOn := true
	if _, err := configure(Safari17_0, tlsfp.Options{ForceECHGrease: &echOn}); err != nil {
		t.Fatalf("configure with ForceECHGrease override: %v", err)
	}
}

func TestAcceptEncodingRendersInCatalogOrder(t *testing.T) {
	got := acceptEncoding([]ContentEncoding{EncodingGzip, EncodingDeflate, EncodingBrotli, EncodingZstd})
	want := "gzip, deflate, br, zstd"
	if got != want {
		t.Errorf("acceptEncoding = %q, want %q", got, want)
	}
}
