package catalog

import "github.com/hdbg/chromimic/internal/profiles"

// Extension IDs referenced by ExtensionsOrder below (RFC 8446 / IANA TLS
// ExtensionType registry). GREASE values are not listed here: GREASE
// insertion is controlled by TLSProfile.GREASE and performed by
// internal/tlsfp, not encoded as a fixed ID in the catalog.
const (
	extServerName                  = 0
	extStatusRequest               = 5
	extSupportedGroups             = 10
	extECPointFormats              = 11
	extSignatureAlgorithms         = 13
	extALPN                        = 16
	extSignedCertificateTimestamp  = 18
	extPadding                     = 21
	extExtendedMasterSecret        = 23
	extCompressCertificate         = 27
	extRecordSizeLimit             = 28
	extSessionTicket               = 35
	extPreSharedKey                = 41
	extPSKKeyExchangeModes         = 45
	extSupportedVersions           = 43
	extKeyShare                    = 51
	extApplicationSettings         = 17513
	extRenegotiationInfo           = 65281
	extEncryptedClientHelloGrease  = 65037
)

// chromeTLS13CipherPrefix is the TLS 1.3 cipher-suite prefix shared by
// every Chromium-derived browser (Chrome, Edge): the "Chrome TLS 1.3
// cipher prefix" the design notes call out as a natural shared helper.
var chromeTLS13CipherPrefix = []string{
	"TLS_AES_128_GCM_SHA256",
	"TLS_AES_256_GCM_SHA384",
	"TLS_CHACHA20_POLY1305_SHA256",
}

// chromeTLS12Ciphers is the TLS 1.2 cipher tail shared by every
// Chromium-derived profile in this catalog.
var chromeTLS12Ciphers = []string{
	"TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
	"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384",
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

func chromeCipherSuites() []string {
	return concat(chromeTLS13CipherPrefix, chromeTLS12Ciphers)
}

// chromeSigAlgs is the signature_algorithms list shared by every
// Chromium-derived profile in this catalog since Chrome adopted RSA-PSS.
var chromeSigAlgs = []string{
	"ecdsa_secp256r1_sha256",
	"rsa_pss_rsae_sha256",
	"rsa_pkcs1_sha256",
	"ecdsa_secp384r1_sha384",
	"rsa_pss_rsae_sha384",
	"rsa_pkcs1_sha384",
	"rsa_pss_rsae_sha512",
	"rsa_pkcs1_sha512",
}

// chromeCurves is the supported_groups list for pre-post-quantum Chrome
// and Edge profiles.
var chromeCurves = []string{"X25519", "SECP256R1", "SECP384R1"}

// chromeCurvesPQ adds the Kyber768 hybrid key-share group Chrome 124+
// offers ahead of X25519 when post-quantum key agreement is enabled.
var chromeCurvesPQ = []string{"X25519Kyber768Draft00", "X25519", "SECP256R1", "SECP384R1"}

// chromeExtensionsOrder is the ClientHello extension order for a modern
// (105 and later) Chromium profile with GREASE and ALPS. PermuteExtensions
// reorders the permutable subset of this at connection time.
var chromeExtensionsOrder = []uint16{
	extServerName,
	extExtendedMasterSecret,
	extRenegotiationInfo,
	extSupportedGroups,
	extECPointFormats,
	extSessionTicket,
	extALPN,
	extStatusRequest,
	extSignatureAlgorithms,
	extSignedCertificateTimestamp,
	extKeyShare,
	extPSKKeyExchangeModes,
	extSupportedVersions,
	extCompressCertificate,
	extApplicationSettings,
	extPadding,
}

// chromeExtensionsOrderLegacy omits compress_certificate and
// application_settings, matching pre-105 Chrome.
var chromeExtensionsOrderLegacy = []uint16{
	extServerName,
	extExtendedMasterSecret,
	extRenegotiationInfo,
	extSupportedGroups,
	extECPointFormats,
	extSessionTicket,
	extALPN,
	extStatusRequest,
	extSignatureAlgorithms,
	extSignedCertificateTimestamp,
	extKeyShare,
	extPSKKeyExchangeModes,
	extSupportedVersions,
	extPadding,
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// baseChromeTLS returns the TLS sub-profile shared by every Chromium
// (Chrome and Edge) catalog entry; per-version constructors copy and
// adjust the handful of fields that actually differ between versions.
func baseChromeTLS() profiles.TLSProfile {
	return profiles.TLSProfile{
		CipherSuites:      chromeCipherSuites(),
		Curves:            chromeCurves,
		SigAlgs:           chromeSigAlgs,
		ALPN:              []string{"h2", "http/1.1"},
		MinVersion:        tlsVersion12,
		MaxVersion:        tlsVersion13,
		ExtensionsOrder:   chromeExtensionsOrder,
		PermuteExtensions: true,
		GREASE:            true,
		OCSPStapling:      true,
		SessionTickets:    true,
		PreSharedKey:      true,
		CertCompression:   []string{"brotli"},
		Padding:           true,
	}
}

const (
	tlsVersion12 = 0x0303
	tlsVersion13 = 0x0304
)
