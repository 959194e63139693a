package catalog

import (
	"testing"

	"github.com/hdbg/chromimic/internal/profiles"
)

func headerValue(hs []profiles.Header, name string) string {
	for _, h := range hs {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

func TestLookupTotalAndNonEmpty(t *testing.T) {
	tags := Tags()
	if len(tags) != 26 {
		t.Fatalf("expected 26 catalog entries, got %d", len(tags))
	}
	for _, tag := range tags {
		entry, ok := Lookup(tag)
		if !ok {
			t.Fatalf("Tags() returned %q but Lookup failed", tag)
		}
		if len(entry.TLS.CipherSuites) == 0 {
			t.Errorf("%s: empty CipherSuites", tag)
		}
		if len(entry.TLS.Curves) == 0 {
			t.Errorf("%s: empty Curves", tag)
		}
		if len(entry.TLS.ExtensionsOrder) == 0 {
			t.Errorf("%s: empty ExtensionsOrder", tag)
		}
		if entry.TLS.MinVersion > entry.TLS.MaxVersion {
			t.Errorf("%s: MinVersion %#x > MaxVersion %#x", tag, entry.TLS.MinVersion, entry.TLS.MaxVersion)
		}
		if len(entry.DefaultHeaders) == 0 {
			t.Errorf("%s: empty DefaultHeaders", tag)
		}
		if len(entry.ContentEncodings) == 0 {
			t.Errorf("%s: empty ContentEncodings", tag)
		}
	}
}

func TestLookupUnknownTag(t *testing.T) {
	if _, ok := Lookup("netscapenavigator4"); ok {
		t.Fatal("expected Lookup to fail for an unknown tag")
	}
}

func TestOkHttpOmitsStreamLimits(t *testing.T) {
	entry, ok := Lookup("okhttp410")
	if !ok {
		t.Fatal("okhttp410 missing from catalog")
	}
	if entry.HTTP2.MaxConcurrentStreams != nil {
		t.Error("okhttp profiles must leave MaxConcurrentStreams nil")
	}
	if entry.HTTP2.HeaderTableSize != nil {
		t.Error("okhttp profiles must leave HeaderTableSize nil")
	}
}

func TestChromeAndSafariSendPadding(t *testing.T) {
	for _, tag := range []string{"chrome126", "safari1741"} {
		entry, ok := Lookup(tag)
		if !ok {
			t.Fatalf("%s missing from catalog", tag)
		}
		if !entry.TLS.Padding {
			t.Errorf("%s: expected Padding true", tag)
		}
	}
}

func TestOkHttp5AdvertisesRecordSizeLimit(t *testing.T) {
	entry, ok := Lookup("okhttp5")
	if !ok {
		t.Fatal("okhttp5 missing from catalog")
	}
	if entry.TLS.RecordSizeLimit == 0 {
		t.Error("expected okhttp5 to set a non-zero RecordSizeLimit")
	}
	found := false
	for _, id := range entry.TLS.ExtensionsOrder {
		if id == extRecordSizeLimit {
			found = true
		}
	}
	if !found {
		t.Error("expected okhttp5 ExtensionsOrder to include record_size_limit")
	}

	older, ok := Lookup("okhttp410")
	if !ok {
		t.Fatal("okhttp410 missing from catalog")
	}
	if older.TLS.RecordSizeLimit != 0 {
		t.Error("expected okhttp410 to leave RecordSizeLimit unset")
	}
}

func TestSafariIosDistinctFromDesktop(t *testing.T) {
	desktop, ok := Lookup("safari165")
	if !ok {
		t.Fatal("safari165 missing from catalog")
	}
	ios, ok := Lookup("safariios165")
	if !ok {
		t.Fatal("safariios165 missing from catalog")
	}
	if headerValue(desktop.DefaultHeaders, "User-Agent") == headerValue(ios.DefaultHeaders, "User-Agent") {
		t.Error("expected desktop and iOS Safari 16.5 to carry distinct User-Agent headers")
	}
}
