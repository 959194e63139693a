package decode

import (
	"io"

	"github.com/andybalholm/brotli"
)

// brotliReader lazily wraps Body in a brotli decompressor on first
// Read, so a response body that turns out empty never pays for
// initializing the brotli reader.
type brotliReader struct {
	body io.ReadCloser
	br   io.Reader
	err  error
}

func newBrotliReader(body io.ReadCloser) io.ReadCloser {
	return &brotliReader{body: body}
}

func (r *brotliReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.br == nil {
		r.br = brotli.NewReader(r.body)
	}
	return r.br.Read(p)
}

func (r *brotliReader) Close() error {
	return r.body.Close()
}
