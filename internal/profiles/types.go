// Package profiles holds the data model shared by the catalog and the two
// components that apply it to a live connection (internal/tlsfp,
// internal/http2fp): the immutable, fully-resolved per-(vendor,version)
// record spec.md §3 calls ProfileEntry, and its TLS/HTTP2 sub-records.
package profiles

// ContentEncoding names a response content-coding the client advertises
// in Accept-Encoding and is prepared to decompress.
type ContentEncoding string

const (
	Gzip    ContentEncoding = "gzip"
	Deflate ContentEncoding = "deflate"
	Brotli  ContentEncoding = "br"
	Zstd    ContentEncoding = "zstd"
)

// TLSProfile is the TLS sub-profile of a catalog entry (spec.md §3).
// Every ordered field is non-empty and canonical for the target browser
// version (Invariant 2); order is preserved verbatim into the ClientHello
// unless PermuteExtensions reorders the permutable subset.
type TLSProfile struct {
	// CipherSuites are IANA cipher-suite names in browser-chosen order,
	// e.g. "TLS_AES_128_GCM_SHA256".
	CipherSuites []string
	// Curves are supported-group names in browser-chosen order, e.g.
	// "X25519", "X25519Kyber768Draft00".
	Curves []string
	// SigAlgs are signature-scheme names in browser-chosen order, e.g.
	// "ecdsa_secp256r1_sha256".
	SigAlgs []string
	// ALPN protocol IDs in client preference order, e.g. "h2", "http/1.1".
	ALPN []string
	// MinVersion and MaxVersion bound the negotiable TLS protocol range;
	// MinVersion <= MaxVersion always holds (Invariant 3).
	MinVersion uint16
	MaxVersion uint16
	// ExtensionsOrder lists extension IDs as they must appear in the
	// ClientHello.
	ExtensionsOrder []uint16
	// PermuteExtensions enables Chrome-style per-connection extension
	// permutation of the permutable subset of ExtensionsOrder.
	PermuteExtensions bool
	// ECHGrease emits the encrypted-client-hello GREASE extension.
	ECHGrease bool
	// GREASE injects RFC 8701 reserved values into the cipher list,
	// curves, and extensions.
	GREASE bool
	// OCSPStapling sends the status_request extension.
	OCSPStapling bool
	// SessionTickets offers session tickets for resumption.
	SessionTickets bool
	// PreSharedKey allows a PSK extension for resumption; when true it is
	// moved last, as required by RFC 8446 and by every browser that
	// sends it.
	PreSharedKey bool
	// CertCompression lists advertised certificate-compression
	// algorithms, e.g. "brotli".
	CertCompression []string
	// RecordSizeLimit is the optional record_size_limit extension value;
	// zero means omitted.
	RecordSizeLimit uint16
	// Padding enables the padding extension.
	Padding bool
}

// HTTP2Profile is the HTTP/2 sub-profile of a catalog entry (spec.md §3).
// A nil pointer means "do not override the library default" and omits the
// corresponding SETTINGS parameter entirely — presence/absence is itself
// part of the fingerprint and must never be defaulted.
type HTTP2Profile struct {
	InitialStreamWindowSize     *uint32
	InitialConnectionWindowSize *uint32
	MaxConcurrentStreams        *uint32
	MaxHeaderListSize           *uint32
	HeaderTableSize             *uint32
	EnablePush                  *bool

	// PriorityParam is the stream-dependency/weight sent in a PRIORITY
	// frame on stream 1; the zero value sends no such frame.
	PriorityParam PriorityParam
	// PriorityFrames are additional PRIORITY frames sent immediately
	// after the connection preface (Firefox pre-allocates a priority
	// tree this way; most other families send none).
	PriorityFrames []PriorityFrame
}

// PriorityParam mirrors the wire fields of an HTTP/2 PRIORITY payload.
type PriorityParam struct {
	StreamDep uint32
	Exclusive bool
	Weight    uint8
}

// PriorityFrame is a standalone PRIORITY frame for a given stream.
type PriorityFrame struct {
	StreamID uint32
	PriorityParam
}

// Header is one (name, value) pair of a profile's default header set.
// Order within ProfileEntry.DefaultHeaders is significant and preserved
// on the wire.
type Header struct {
	Name  string
	Value string
}

// ProfileEntry is the fully-resolved, immutable record for one
// (vendor, version) pair (spec.md §3). The catalog builds a fresh one on
// every lookup, and it is not mutated afterward.
type ProfileEntry struct {
	TLS              TLSProfile
	HTTP2            HTTP2Profile
	DefaultHeaders   []Header
	ContentEncodings []ContentEncoding
}
