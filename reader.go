package crook

import (
	"io"

	"github.com/crookcomp/crook/internal/ppm"
)

// Reader decompresses src incrementally, the way the teacher's original
// NewH7zReader wraps a decode-one-char-at-a-time engine behind io.Reader.
// Unlike that original, Reader does not need the uncompressed size passed
// in: the format embeds it in the stream's own length prefix.
type Reader struct {
	dec          *ppm.Decoder
	uncompressed uint32
}

// NewReader reads the stream's length prefix and primes the range coder.
func NewReader(src io.Reader, opts Options) (*Reader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	dec, err := ppm.NewDecoder(src, opts.MemoryLimit, opts.OrderLimit)
	if err != nil {
		return nil, err
	}
	return &Reader{dec: dec}, nil
}

// Len reports the total uncompressed size, as declared by the stream.
func (r *Reader) Len() uint32 { return r.dec.TextLength }

func (r *Reader) Read(buf []byte) (int, error) {
	if r.uncompressed >= r.dec.TextLength {
		return 0, io.EOF
	}
	n := len(buf)
	if remain := r.dec.TextLength - r.uncompressed; uint32(n) > remain {
		n = int(remain)
	}

	for i := 0; i < n; i++ {
		c, err := r.dec.DecodeByte()
		if err != nil {
			return i, err
		}
		buf[i] = c
		r.uncompressed++
	}
	return n, nil
}
