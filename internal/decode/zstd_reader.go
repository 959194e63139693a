package decode

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdReader lazily wraps Body in a zstd decompressor on first Read.
type zstdReader struct {
	body io.ReadCloser
	zr   *zstd.Decoder
	err  error
}

func newZstdReader(body io.ReadCloser) io.ReadCloser {
	return &zstdReader{body: body}
}

func (r *zstdReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.zr == nil {
		zr, err := zstd.NewReader(r.body)
		if err != nil {
			r.err = err
			return 0, err
		}
		r.zr = zr
	}
	return r.zr.Read(p)
}

func (r *zstdReader) Close() error {
	if r.zr != nil {
		r.zr.Close()
	}
	return r.body.Close()
}
