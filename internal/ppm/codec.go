package ppm

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Encoder drives the model and the range coder one byte at a time (§4.4),
// MSB first, and owns the compressed stream's length prefix.
type Encoder struct {
	bw    *bufio.Writer
	model *Model
	rc    *encoder
}

// NewEncoder writes the 4-byte big-endian length prefix and prepares the
// model and range coder for textLength bytes of input.
func NewEncoder(w io.Writer, textLength uint32, memoryLimit, orderLimit int) (*Encoder, error) {
	bw := bufio.NewWriter(w)
	if err := writeUint32BE(bw, textLength); err != nil {
		return nil, errors.Wrap(err, "ppm: writing length prefix")
	}

	model, err := NewModel(memoryLimit, orderLimit)
	if err != nil {
		return nil, err
	}

	return &Encoder{bw: bw, model: model, rc: newEncoder(bw)}, nil
}

// EncodeByte compresses one byte.
func (e *Encoder) EncodeByte(c byte) error {
	for mask := byte(0x80); mask != 0; mask >>= 1 {
		p1 := e.model.Predict()
		var bit uint32
		if c&mask != 0 {
			bit = 1
		}
		e.rc.encode(bit, p1)
		e.model.Update(bit)
		if err := e.rc.normalize(); err != nil {
			return errors.Wrap(err, "ppm: encoding")
		}
	}
	return nil
}

// Flush emits the range coder's tail and flushes the underlying writer.
// It must be called exactly once, after the last EncodeByte.
func (e *Encoder) Flush() error {
	if err := e.rc.flush(); err != nil {
		return errors.Wrap(err, "ppm: flushing")
	}
	return e.bw.Flush()
}

// UsedMemoryMiB reports the model arena's current high-water mark.
func (e *Encoder) UsedMemoryMiB() uint32 { return e.model.GetUsedMemory() }

// Decoder is the mirror image of Encoder: it reads the length prefix,
// primes the range coder, and decodes one byte at a time.
type Decoder struct {
	br    *bufio.Reader
	model *Model
	rc    *decoder

	// TextLength is the uncompressed length read from the stream's
	// 4-byte prefix.
	TextLength uint32
}

// NewDecoder reads the length prefix and the range coder's 5-byte priming
// read before returning.
func NewDecoder(r io.Reader, memoryLimit, orderLimit int) (*Decoder, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	length, err := readUint32BE(br)
	if err != nil {
		return nil, truncatedOr(err)
	}

	model, err := NewModel(memoryLimit, orderLimit)
	if err != nil {
		return nil, err
	}

	rc, err := newDecoder(br)
	if err != nil {
		return nil, err
	}

	return &Decoder{br: br, model: model, rc: rc, TextLength: length}, nil
}

// DecodeByte decompresses one byte.
func (d *Decoder) DecodeByte() (byte, error) {
	var c byte
	for mask := byte(0x80); mask != 0; mask >>= 1 {
		p1 := d.model.Predict()
		bit := d.rc.decode(p1)
		if bit != 0 {
			c |= mask
		}
		d.model.Update(bit)
		if err := d.rc.normalize(); err != nil {
			return 0, errors.Wrap(err, "ppm: decoding")
		}
	}
	return c, nil
}

// UsedMemoryMiB reports the model arena's current high-water mark.
func (d *Decoder) UsedMemoryMiB() uint32 { return d.model.GetUsedMemory() }

func writeUint32BE(w io.ByteWriter, v uint32) error {
	return writeBytes(w, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func readUint32BE(r io.ByteReader) (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v = (v << 8) | uint32(b)
	}
	return v, nil
}
