package ppm

import "io"

// encoder is the range coder's write side. It keeps a 64-bit low so a
// carry out of the 32-bit range is visible, and a "flux" pair
// (fluxLen, fluxFst) tracking a pending output segment that a later
// carry might still bump by one. See also: decoder, its mirror image.
type encoder struct {
	w       io.ByteWriter
	low     uint64
	rng     uint32
	fluxLen uint32
	fluxFst byte
}

func newEncoder(w io.ByteWriter) *encoder {
	return &encoder{w: w, rng: 0xFFFFFFFF, fluxLen: 1, fluxFst: 0}
}

// encode consumes one (bit, probability) pair. p1 must be in (0, ariPScale).
func (e *encoder) encode(bit, p1 uint32) {
	mid := e.rng / ariPScale * p1
	if bit != 0 {
		e.rng = mid
	} else {
		e.low += uint64(mid)
		e.rng -= mid
	}
}

// normalize must be called after every encoded bit.
func (e *encoder) normalize() error {
	for e.rng < kTopValue {
		lo32 := uint32(e.low)
		hi32 := uint32(e.low >> 32)

		if lo32 < 0xFF000000 || hi32 != 0 {
			if err := e.w.WriteByte(byte(uint32(e.fluxFst) + hi32)); err != nil {
				return err
			}
			for i := uint32(0); i < e.fluxLen-1; i++ {
				if err := e.w.WriteByte(byte(0xFF + hi32)); err != nil {
					return err
				}
			}
			e.fluxFst = byte(lo32 >> 24)
			e.fluxLen = 0
		}

		e.fluxLen++
		e.low = uint64(lo32 << 8)
		e.rng <<= 8
	}
	return nil
}

// flush emits the final pending segment and the four bytes of low. Must
// be called exactly once, after the last bit has been encoded and
// normalized.
func (e *encoder) flush() error {
	lo32 := uint32(e.low)
	hi32 := uint32(e.low >> 32)

	if err := e.w.WriteByte(byte(uint32(e.fluxFst) + hi32)); err != nil {
		return err
	}
	for i := uint32(0); i < e.fluxLen-1; i++ {
		if err := e.w.WriteByte(byte(0xFF + hi32)); err != nil {
			return err
		}
	}
	return writeBytes(e.w,
		byte(lo32>>24), byte(lo32>>16), byte(lo32>>8), byte(lo32))
}

func writeBytes(w io.ByteWriter, bs ...byte) error {
	for _, b := range bs {
		if err := w.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}
