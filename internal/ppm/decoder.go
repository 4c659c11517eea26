package ppm

import (
	"io"

	"github.com/pkg/errors"
)

// decoder is the range coder's read side, the mirror image of encoder.
// It keeps a 32-bit "code minus low" (cml) instead of low/flux, since
// the decoder never needs to defer a carry: it just compares against
// whatever bytes already arrived.
type decoder struct {
	r   io.ByteReader
	rng uint32
	cml uint32
}

// newDecoder primes cml with five bytes, discarding the always-zero
// leading byte the encoder's flux mechanism guarantees; this elides a
// branch from the renormalization hot path and is part of the wire
// format.
func newDecoder(r io.ByteReader) (*decoder, error) {
	d := &decoder{r: r, rng: 0xFFFFFFFF}
	for i := 0; i < 5; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			return nil, truncatedOr(err)
		}
		d.cml = (d.cml << 8) | uint32(b)
	}
	return d, nil
}

// decode consumes one probability and returns the bit it implies. p1 must
// be in (0, ariPScale).
func (d *decoder) decode(p1 uint32) uint32 {
	mid := d.rng / ariPScale * p1
	if d.cml < mid {
		d.rng = mid
		return 1
	}
	d.cml -= mid
	d.rng -= mid
	return 0
}

// normalize must be called after every decoded bit.
func (d *decoder) normalize() error {
	for d.rng < kTopValue {
		b, err := d.r.ReadByte()
		if err != nil {
			return truncatedOr(err)
		}
		d.cml = (d.cml << 8) | uint32(b)
		d.rng <<= 8
	}
	return nil
}

func truncatedOr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncatedStream
	}
	return errors.Wrap(err, "ppm: reading compressed stream")
}
