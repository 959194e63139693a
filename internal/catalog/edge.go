package catalog

import "github.com/hdbg/chromimic/internal/profiles"

// Edge is Chromium under the hood, so its TLS and HTTP/2 sub-profiles
// track the same-era Chrome build; only the header set differs
// (Sec-CH-UA brand list, User-Agent "Edg/" token).

func edge99() profiles.ProfileEntry {
	tls := baseChromeTLS()
	tls.ExtensionsOrder = chromeExtensionsOrderLegacy
	tls.PermuteExtensions = false
	tls.CertCompression = nil
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   edgeHeaders("99", "99", "99"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func edge101() profiles.ProfileEntry {
	tls := baseChromeTLS()
	tls.ExtensionsOrder = chromeExtensionsOrderLegacy
	tls.PermuteExtensions = false
	tls.CertCompression = nil
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   edgeHeaders("101", "101", "101"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli},
	}
}

func edge122() profiles.ProfileEntry {
	tls := baseChromeTLS()
	tls.ECHGrease = true
	return profiles.ProfileEntry{
		TLS:              tls,
		HTTP2:            chromeHTTP2Settings(),
		DefaultHeaders:   edgeHeaders("122", "122", "122"),
		ContentEncodings: []profiles.ContentEncoding{profiles.Gzip, profiles.Deflate, profiles.Brotli, profiles.Zstd},
	}
}
