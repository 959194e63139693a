package catalog

import "github.com/hdbg/chromimic/internal/profiles"

// safariCipherSuites is shared across every WebKit/Safari catalog entry;
// unlike Chromium, Safari never adopted a separate "legacy" cipher list
// across the versions tracked here.
var safariCipherSuites = []string{
	"TLS_AES_128_GCM_SHA256",
	"TLS_AES_256_GCM_SHA384",
	"TLS_CHACHA20_POLY1305_SHA256",
	"TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384",
	"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384",
	"TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256",
	"TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256",
	"TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA",
	"TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA",
	"TLS_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_RSA_WITH_AES_256_GCM_SHA384",
	"TLS_RSA_WITH_AES_128_CBC_SHA",
	"TLS_RSA_WITH_AES_256_CBC_SHA",
}

var safariSigAlgs = []string{
	"ecdsa_secp256r1_sha256",
	"rsa_pss_rsae_sha256",
	"rsa_pkcs1_sha256",
	"ecdsa_secp384r1_sha384",
	"ecdsa_sha1",
	"rsa_pss_rsae_sha384",
	"rsa_pkcs1_sha384",
	"rsa_pss_rsae_sha512",
	"rsa_pkcs1_sha512",
	"rsa_pkcs1_sha1",
}

// safariExtensionsOrder is WebKit's ClientHello extension order: no
// application_settings or compress_certificate (those are
// Chromium-specific), and no permutation — Safari has never randomized
// extension order.
var safariExtensionsOrder = []uint16{
	extServerName,
	extExtendedMasterSecret,
	extRenegotiationInfo,
	extSupportedGroups,
	extECPointFormats,
	extALPN,
	extStatusRequest,
	extSignatureAlgorithms,
	extSignedCertificateTimestamp,
	extKeyShare,
	extPSKKeyExchangeModes,
	extSupportedVersions,
	extPadding,
}

func baseSafariTLS() profiles.TLSProfile {
	return profiles.TLSProfile{
		CipherSuites:      safariCipherSuites,
		Curves:            []string{"X25519", "SECP256R1", "SECP384R1", "SECP521R1"},
		SigAlgs:           safariSigAlgs,
		ALPN:              []string{"h2", "http/1.1"},
		MinVersion:        tlsVersion12,
		MaxVersion:        tlsVersion13,
		ExtensionsOrder:   safariExtensionsOrder,
		PermuteExtensions: false,
		GREASE:            true,
		OCSPStapling:      true,
		SessionTickets:    true,
		PreSharedKey:      true,
		Padding:           true,
	}
}

func safariHTTP2Settings() profiles.HTTP2Profile {
	return profiles.HTTP2Profile{
		InitialStreamWindowSize:     u32(4194304),
		MaxConcurrentStreams:        u32(100),
		InitialConnectionWindowSize: u32(10485760),
		PriorityParam: profiles.PriorityParam{
			StreamDep: 0,
			Exclusive: false,
			Weight:    254,
		},
		// HeaderTableSize, MaxHeaderListSize, EnablePush: Safari sends
		// none of these; omission is load-bearing for the fingerprint.
	}
}

func safari15_3() profiles.ProfileEntry {
	tls := baseSafariTLS()
	tls.GREASE = false // GREASE landed in Safari later than 15.3
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            safariHTTP2Settings(),
		DefaultHeaders:   safariHeaders("15.3"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func safari15_6_1() profiles.ProfileEntry {
	tls := baseSafariTLS()
	tls.GREASE = false
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            safariHTTP2Settings(),
		DefaultHeaders:   safariHeaders("15.6.1"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func safari16() profiles.ProfileEntry {
	tls := baseSafariTLS()
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            safariHTTP2Settings(),
		DefaultHeaders:   safariHeaders("16.0"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func safari16_5() profiles.ProfileEntry {
	tls := baseSafariTLS()
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            safariHTTP2Settings(),
		DefaultHeaders:   safariHeaders("16.5"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func safari17_0() profiles.ProfileEntry {
	tls := baseSafariTLS()
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            safariHTTP2Settings(),
		DefaultHeaders:   safariHeaders("17.0"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func safari17_4_1() profiles.ProfileEntry {
	tls := baseSafariTLS()
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            safariHTTP2Settings(),
		DefaultHeaders:   safariHeaders("17.4.1"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

// safariIos16_5 and safari16_5 share a TLS/HTTP2 sub-profile (iOS and
// macOS Safari 16.5 use the same WebKit/BoringSSL build) but are kept as
// distinct catalog entries with distinct headers and distinct Display
// spellings; see DESIGN.md's Open Question resolution.
func safariIos16_5() profiles.ProfileEntry {
	tls := baseSafariTLS()
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            safariHTTP2Settings(),
		DefaultHeaders:   safariIosHeaders("16.5", "16_5"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func safariIos17_4_1() profiles.ProfileEntry {
	tls := baseSafariTLS()
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            safariHTTP2Settings(),
		DefaultHeaders:   safariIosHeaders("17.4.1", "17_4_1"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}
