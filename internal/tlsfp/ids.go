// Package tlsfp turns a catalog TLS sub-profile into a concrete uTLS
// ClientHelloSpec and a per-connection dialer that performs the uTLS
// handshake. It owns the only numeric-ID knowledge in the module: the
// catalog speaks in cipher/curve/signature-algorithm names so that
// internal/catalog stays free of any uTLS import.
package tlsfp

import (
	"fmt"

	utls "github.com/refraction-networking/utls"
)

var cipherSuiteByName = map[string]uint16{
	"TLS_AES_128_GCM_SHA256":                        utls.TLS_AES_128_GCM_SHA256,
	"TLS_AES_256_GCM_SHA384":                        utls.TLS_AES_256_GCM_SHA384,
	"TLS_CHACHA20_POLY1305_SHA256":                  utls.TLS_CHACHA20_POLY1305_SHA256,
	"TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256":       utls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256":         utls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384":       utls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	"TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384":         utls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	"TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256": utls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
	"TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256":   utls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
	"TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA":            utls.TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA,
	"TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA":            utls.TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA,
	"TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA":          utls.TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA,
	"TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA":          utls.TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA,
	"TLS_RSA_WITH_AES_128_GCM_SHA256":               utls.TLS_RSA_WITH_AES_128_GCM_SHA256,
	"TLS_RSA_WITH_AES_256_GCM_SHA384":               utls.TLS_RSA_WITH_AES_256_GCM_SHA384,
	"TLS_RSA_WITH_AES_128_CBC_SHA":                  utls.TLS_RSA_WITH_AES_128_CBC_SHA,
	"TLS_RSA_WITH_AES_256_CBC_SHA":                  utls.TLS_RSA_WITH_AES_256_CBC_SHA,
	"TLS_RSA_WITH_3DES_EDE_CBC_SHA":                 utls.TLS_RSA_WITH_3DES_EDE_CBC_SHA,
}

var curveByName = map[string]utls.CurveID{
	"X25519":    utls.X25519,
	"SECP256R1": utls.CurveP256,
	"SECP384R1": utls.CurveP384,
	"SECP521R1": utls.CurveP521,
	// X25519Kyber768Draft00 is the hybrid post-quantum group Chrome 124+
	// and OkHttp 5 offer ahead of plain X25519.
	"X25519Kyber768Draft00": utls.X25519Kyber768Draft00,
}

var sigAlgByName = map[string]utls.SignatureScheme{
	"ecdsa_secp256r1_sha256": utls.ECDSAWithP256AndSHA256,
	"ecdsa_secp384r1_sha384": utls.ECDSAWithP384AndSHA384,
	"ecdsa_secp521r1_sha512": utls.ECDSAWithP521AndSHA512,
	"ecdsa_sha1":             utls.ECDSAWithSHA1,
	"rsa_pss_rsae_sha256":    utls.PSSWithSHA256,
	"rsa_pss_rsae_sha384":    utls.PSSWithSHA384,
	"rsa_pss_rsae_sha512":    utls.PSSWithSHA512,
	"rsa_pkcs1_sha256":       utls.PKCS1WithSHA256,
	"rsa_pkcs1_sha384":       utls.PKCS1WithSHA384,
	"rsa_pkcs1_sha512":       utls.PKCS1WithSHA512,
	"rsa_pkcs1_sha1":         utls.PKCS1WithSHA1,
}

var certCompressionByName = map[string]utls.CertCompressionAlgo{
	"brotli": utls.CertCompressionBrotli,
	"zlib":   utls.CertCompressionZlib,
	"zstd":   utls.CertCompressionZstd,
}

func resolveCipherSuites(names []string) ([]uint16, error) {
	out := make([]uint16, 0, len(names)+1)
	out = append(out, utls.GREASE_PLACEHOLDER)
	for _, n := range names {
		id, ok := cipherSuiteByName[n]
		if !ok {
			return nil, fmt.Errorf("tlsfp: unknown cipher suite %q", n)
		}
		out = append(out, id)
	}
	return out, nil
}

func resolveCurves(names []string) ([]utls.CurveID, error) {
	out := make([]utls.CurveID, 0, len(names)+1)
	out = append(out, utls.CurveID(utls.GREASE_PLACEHOLDER))
	for _, n := range names {
		id, ok := curveByName[n]
		if !ok {
			return nil, fmt.Errorf("tlsfp: unknown curve %q", n)
		}
		out = append(out, id)
	}
	return out, nil
}

func resolveSigAlgs(names []string) ([]utls.SignatureScheme, error) {
	out := make([]utls.SignatureScheme, 0, len(names))
	for _, n := range names {
		id, ok := sigAlgByName[n]
		if !ok {
			return nil, fmt.Errorf("tlsfp: unknown signature algorithm %q", n)
		}
		out = append(out, id)
	}
	return out, nil
}

func resolveCertCompression(names []string) ([]utls.CertCompressionAlgo, error) {
	out := make([]utls.CertCompressionAlgo, 0, len(names))
	for _, n := range names {
		id, ok := certCompressionByName[n]
		if !ok {
			return nil, fmt.Errorf("tlsfp: unknown cert compression algorithm %q", n)
		}
		out = append(out, id)
	}
	return out, nil
}
