// Package decode wraps an HTTP response body in the decompressor named
// by its Content-Encoding header. Go's net/http transport already
// handles gzip transparently when it set the Accept-Encoding header
// itself, but a profile's own Accept-Encoding (installed by the Header
// Installer) disables that automatic handling, so every encoding a
// catalog profile advertises needs to be decoded here instead.
package decode

import (
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
)

// Wrap returns a ReadCloser that transparently decompresses body
// according to contentEncoding ("gzip", "deflate", "br", "zstd", or ""
// for identity). Unknown encodings are returned unmodified with an
// error so the caller can decide whether to surface raw bytes or fail.
func Wrap(body io.ReadCloser, contentEncoding string) (io.ReadCloser, error) {
	switch contentEncoding {
	case "", "identity":
		return body, nil
	case "gzip":
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("decode: gzip: %w", err)
		}
		return &gzipReadCloser{gz: gz, body: body}, nil
	case "deflate":
		return &flateReadCloser{fr: flate.NewReader(body), body: body}, nil
	case "br":
		return newBrotliReader(body), nil
	case "zstd":
		return newZstdReader(body), nil
	default:
		return body, fmt.Errorf("decode: unsupported content-encoding %q", contentEncoding)
	}
}

type gzipReadCloser struct {
	gz   *gzip.Reader
	body io.ReadCloser
}

func (r *gzipReadCloser) Read(p []byte) (int, error) { return r.gz.Read(p) }
func (r *gzipReadCloser) Close() error {
	_ = r.gz.Close()
	return r.body.Close()
}

type flateReadCloser struct {
	fr   io.ReadCloser
	body io.ReadCloser
}

func (r *flateReadCloser) Read(p []byte) (int, error) { return r.fr.Read(p) }
func (r *flateReadCloser) Close() error {
	_ = r.fr.Close()
	return r.body.Close()
}
