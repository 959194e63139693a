package chromimic

import "github.com/hdbg/chromimic/internal/profiles"

// ProfileEntry, TLSProfile, HTTP2Profile and Header are re-exported from
// internal/profiles so callers that want to inspect or fork a catalog
// entry (see Client.ProfileEntry) don't need to import an internal
// package themselves.
type (
	ProfileEntry  = profiles.ProfileEntry
	TLSProfile    = profiles.TLSProfile
	HTTP2Profile  = profiles.HTTP2Profile
	Header        = profiles.Header
	PriorityParam = profiles.PriorityParam
)

// ContentEncoding names a response body transfer coding a profile may
// advertise via Accept-Encoding and that the Dispatcher then knows how
// to decode.
type ContentEncoding = profiles.ContentEncoding

const (
	EncodingGzip    = profiles.Gzip
	EncodingDeflate = profiles.Deflate
	EncodingBrotli  = profiles.Brotli
	EncodingZstd    = profiles.Zstd
)
