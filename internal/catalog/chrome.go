package catalog

import "github.com/hdbg/chromimic/internal/profiles"

// chromeHTTP2Settings is the SETTINGS frame values sent by every Chrome
// version in this catalog from 99 through 131: Chrome has kept these
// constant across that span even as TLS and header details changed.
// (Values confirmed against other_examples/3c1f5644_enetx-surf__impersonate.go.go
// and client_impersonate.go's chromeHttp2Settings.)
func chromeHTTP2Settings() profiles.HTTP2Profile {
	return profiles.HTTP2Profile{
		HeaderTableSize:             u32(65536),
		EnablePush:                  boolp(false),
		MaxConcurrentStreams:        u32(1000),
		InitialStreamWindowSize:     u32(6291456),
		InitialConnectionWindowSize: u32(15663105),
		MaxHeaderListSize:           u32(262144),
		PriorityParam: profiles.PriorityParam{
			StreamDep: 0,
			Exclusive: true,
			Weight:    255,
		},
	}
}

func u32(v uint32) *uint32 { return &v }
func boolp(v bool) *bool   { return &v }

func chrome99() profiles.ProfileEntry {
	tls := baseChromeTLS()
	tls.ExtensionsOrder = chromeExtensionsOrderLegacy
	tls.PermuteExtensions = false // Chrome only started permuting extensions in v106
	tls.CertCompression = nil     // compress_certificate shipped later
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   chromeHeaders("99", "99", "Windows"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func chrome104() profiles.ProfileEntry {
	tls := baseChromeTLS()
	tls.ExtensionsOrder = chromeExtensionsOrderLegacy
	tls.PermuteExtensions = false
	tls.CertCompression = nil
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   chromeHeaders("104", "104", "Windows"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func chrome110() profiles.ProfileEntry {
	tls := baseChromeTLS() // 110 has compress_certificate and permutation
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   chromeHeaders("110", "110", "Windows"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func chrome116() profiles.ProfileEntry {
	tls := baseChromeTLS()
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   chromeHeaders("116", "116", "Windows"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func chrome120() profiles.ProfileEntry {
	tls := baseChromeTLS()
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   chromeHeaders("120", "120", "macOS"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli, profiles.Zstd},
	}
}

func chrome124() profiles.ProfileEntry {
	tls := baseChromeTLS()
	tls.ECHGrease = true // Chrome shipped ECH GREASE by default around v120-124
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   chromeHeaders("124", "124", "Windows"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli, profiles.Zstd},
	}
}

func chrome126() profiles.ProfileEntry {
	tls := baseChromeTLS()
	tls.ECHGrease = true
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   chromeHeaders("126", "126", "Windows"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli, profiles.Zstd},
	}
}

func chrome131() profiles.ProfileEntry {
	tls := baseChromeTLS()
	tls.Curves = chromeCurvesPQ // post-quantum X25519Kyber768Draft00 key share
	tls.ECHGrease = true
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   chromeHeaders("131", "131", "Windows"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli, profiles.Zstd},
	}
}
