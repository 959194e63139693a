package catalog

import "github.com/hdbg/chromimic/internal/profiles"

// okHttpCipherSuitesModern is OkHttp/Conscrypt's "MODERN_TLS" cipher
// suite list (android.net.ssl / okhttp3.ConnectionSpec.MODERN_TLS),
// shared by every OkHttp version tracked here.
var okHttpCipherSuitesModern = []string{
	"TLS_AES_128_GCM_SHA256",
	"TLS_AES_256_GCM_SHA384",
	"TLS_CHACHA20_POLY1305_SHA256",
	"TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384",
	"TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384",
	"TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256",
	"TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256",
	"TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA",
	"TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA",
	"TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA",
	"TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA",
	"TLS_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_RSA_WITH_AES_256_GCM_SHA384",
	"TLS_RSA_WITH_AES_128_CBC_SHA",
	"TLS_RSA_WITH_AES_256_CBC_SHA",
}

var okHttpSigAlgs = []string{
	"ecdsa_secp256r1_sha256",
	"rsa_pss_rsae_sha256",
	"rsa_pkcs1_sha256",
	"ecdsa_secp384r1_sha384",
	"rsa_pss_rsae_sha384",
	"rsa_pkcs1_sha384",
	"rsa_pkcs1_sha1",
}

// okHttpExtensionsOrder is Conscrypt's ClientHello extension order:
// no GREASE, no permutation, no ALPS/compress_certificate.
var okHttpExtensionsOrder = []uint16{
	extServerName,
	extExtendedMasterSecret,
	extRenegotiationInfo,
	extSupportedGroups,
	extECPointFormats,
	extSessionTicket,
	extALPN,
	extStatusRequest,
	extSignatureAlgorithms,
	extKeyShare,
	extPSKKeyExchangeModes,
	extSupportedVersions,
}

func baseOkHttpTLS() profiles.TLSProfile {
	return profiles.TLSProfile{
		CipherSuites:      okHttpCipherSuitesModern,
		Curves:            []string{"X25519", "SECP256R1", "SECP384R1"},
		SigAlgs:           okHttpSigAlgs,
		ALPN:              []string{"h2", "http/1.1"},
		MinVersion:        tlsVersion12,
		MaxVersion:        tlsVersion13,
		ExtensionsOrder:   okHttpExtensionsOrder,
		PermuteExtensions: false,
		GREASE:            false,
		OCSPStapling:      true,
		SessionTickets:    true,
		PreSharedKey:      true,
	}
}

// okHttpHTTP2Settings leaves HeaderTableSize, MaxConcurrentStreams and
// MaxHeaderListSize nil: OkHttp's Http2Connection.Builder never sets
// these, so a probe only ever observes ENABLE_PUSH and the two window
// sizes. Treating "absent" as a real, distinguishing value (rather than
// filling in Go zero defaults) is the catalog's second resolved Open
// Question.
func okHttpHTTP2Settings() profiles.HTTP2Profile {
	return profiles.HTTP2Profile{
		EnablePush:                  boolp(false),
		InitialStreamWindowSize:     u32(16777216),
		InitialConnectionWindowSize: u32(16777216),
	}
}

func okHttp3_9() profiles.ProfileEntry {
	return profiles.ProfileEntry{
		TLS:              baseOkHttpTLS(),
		HTTP2:            okHttpHTTP2Settings(),
		DefaultHeaders:   okHttpHeaders("3.9"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip},
	}
}

func okHttp3_11() profiles.ProfileEntry {
	return profiles.ProfileEntry{
		TLS:              baseOkHttpTLS(),
		HTTP2:            okHttpHTTP2Settings(),
		DefaultHeaders:   okHttpHeaders("3.11"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip},
	}
}

func okHttp3_13() profiles.ProfileEntry {
	return profiles.ProfileEntry{
		TLS:              baseOkHttpTLS(),
		HTTP2:            okHttpHTTP2Settings(),
		DefaultHeaders:   okHttpHeaders("3.13"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip},
	}
}

func okHttp3_14() profiles.ProfileEntry {
	return profiles.ProfileEntry{
		TLS:              baseOkHttpTLS(),
		HTTP2:            okHttpHTTP2Settings(),
		DefaultHeaders:   okHttpHeaders("3.14"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip},
	}
}

func okHttp4_9() profiles.ProfileEntry {
	return profiles.ProfileEntry{
		TLS:              baseOkHttpTLS(),
		HTTP2:            okHttpHTTP2Settings(),
		DefaultHeaders:   okHttpHeaders("4.9.0"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip},
	}
}

func okHttp4_10() profiles.ProfileEntry {
	return profiles.ProfileEntry{
		TLS:              baseOkHttpTLS(),
		HTTP2:            okHttpHTTP2Settings(),
		DefaultHeaders:   okHttpHeaders("4.10.0"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip},
	}
}

// okHttp5ExtensionsOrder is okHttpExtensionsOrder plus record_size_limit:
// OkHttp 5's move to a BoringSSL-backed TLS engine picked up BoringSSL's
// default record_size_limit advertisement alongside the Kyber hybrid
// group, neither of which the Conscrypt-backed 3.x/4.x line sends.
var okHttp5ExtensionsOrder = append(append([]uint16{}, okHttpExtensionsOrder...), extRecordSizeLimit)

func okHttp5() profiles.ProfileEntry {
	tls := baseOkHttpTLS()
	tls.Curves = chromeCurvesPQ // OkHttp 5 picked up BoringSSL's Kyber hybrid group
	tls.ExtensionsOrder = okHttp5ExtensionsOrder
	tls.RecordSizeLimit = 0x4001
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            okHttpHTTP2Settings(),
		DefaultHeaders:   okHttpHeaders("5.0.0-alpha.14"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip},
	}
}
