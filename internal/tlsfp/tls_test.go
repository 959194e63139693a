package tlsfp

import (
	"math/rand"
	"testing"

	utls "github.com/refraction-networking/utls"

	"github.com/hdbg/chromimic/internal/profiles"
)

func chromeLikeProfile() profiles.TLSProfile {
	return profiles.TLSProfile{
		CipherSuites: []string{
			"TLS_AES_128_GCM_SHA256",
			"TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256",
			"TLS_RSA_WITH_AES_128_CBC_SHA",
		},
		Curves:          []string{"X25519", "SECP256R1"},
		SigAlgs:         []string{"ecdsa_secp256r1_sha256", "rsa_pss_rsae_sha256"},
		ALPN:            []string{"h2", "http/1.1"},
		MinVersion:      tlsVersion12,
		MaxVersion:      tlsVersion13,
		ExtensionsOrder: []uint16{extServerName, extSupportedGroups, extALPN, extKeyShare, extSupportedVersions, extPadding},
		GREASE:          true,
		OCSPStapling:    false,
		SessionTickets:  false,
		PreSharedKey:    false,
		Padding:         true,
	}
}

func TestBuildClientHelloSpecResolvesNames(t *testing.T) {
	spec, err := BuildClientHelloSpec(chromeLikeProfile(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BuildClientHelloSpec: %v", err)
	}
	if len(spec.CipherSuites) != 4 { // 3 named + 1 GREASE
		t.Errorf("expected 4 cipher suites (incl. GREASE), got %d", len(spec.CipherSuites))
	}
	if len(spec.Extensions) == 0 {
		t.Error("expected a non-empty extension list")
	}
}

func TestBuildClientHelloSpecUnknownCipher(t *testing.T) {
	p := chromeLikeProfile()
	p.CipherSuites = append(p.CipherSuites, "TLS_NOT_A_REAL_SUITE")
	if _, err := BuildClientHelloSpec(p, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected an error for an unresolvable cipher suite name")
	}
}

func TestPermuteExtensionOrderPinsTrailing(t *testing.T) {
	order := []uint16{extServerName, extSupportedGroups, extPreSharedKey, extALPN, extPadding}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		permuted := permuteExtensionOrder(order, rng)
		if len(permuted) != len(order) {
			t.Fatalf("permuted length changed: %d vs %d", len(permuted), len(order))
		}
		last := permuted[len(permuted)-1]
		if last != extPreSharedKey {
			t.Fatalf("expected pre_shared_key last, got %d", last)
		}
		secondLast := permuted[len(permuted)-2]
		if secondLast != extPadding {
			t.Fatalf("expected padding second-to-last, got %d", secondLast)
		}
	}
}

func TestBuildExtensionHonorsPaddingFlag(t *testing.T) {
	p := chromeLikeProfile()
	p.Padding = false
	ext, err := buildExtension(extPadding, p, nil, nil)
	if err != nil {
		t.Fatalf("buildExtension: %v", err)
	}
	if ext != nil {
		t.Error("expected a nil padding extension when Padding is false")
	}

	p.Padding = true
	ext, err = buildExtension(extPadding, p, nil, nil)
	if err != nil {
		t.Fatalf("buildExtension: %v", err)
	}
	if ext == nil {
		t.Error("expected a padding extension when Padding is true")
	}
}

func TestBuildExtensionRecordSizeLimit(t *testing.T) {
	p := chromeLikeProfile()
	p.RecordSizeLimit = 0
	if ext, err := buildExtension(extRecordSizeLimit, p, nil, nil); err != nil || ext != nil {
		t.Errorf("expected a nil, error-free extension when RecordSizeLimit is unset, got %v, %v", ext, err)
	}

	p.RecordSizeLimit = 0x4001
	ext, err := buildExtension(extRecordSizeLimit, p, nil, nil)
	if err != nil {
		t.Fatalf("buildExtension: %v", err)
	}
	rsl, ok := ext.(*utls.FakeRecordSizeLimitExtension)
	if !ok {
		t.Fatalf("expected *utls.FakeRecordSizeLimitExtension, got %T", ext)
	}
	if rsl.Limit != 0x4001 {
		t.Errorf("expected Limit 0x4001, got %#x", rsl.Limit)
	}
}

func TestConnSeedDoesNotRepeatOrCorrelate(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		seed, err := connSeed()
		if err != nil {
			t.Fatalf("connSeed: %v", err)
		}
		if seen[seed] {
			t.Fatalf("connSeed repeated a value: %d", seed)
		}
		seen[seed] = true
	}
}

func TestBuildRejectsUnknownExtension(t *testing.T) {
	p := chromeLikeProfile()
	p.ExtensionsOrder = append(p.ExtensionsOrder, 0xfffe)
	if _, err := Build(p, Options{}); err == nil {
		t.Fatal("expected Build to fail fast on an unknown extension id")
	}
}
