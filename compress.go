package crook

import (
	"io"

	"github.com/crookcomp/crook/internal/ppm"
	"github.com/pkg/errors"
)

// Compress reads all of src, which must support Seek since the format
// requires the uncompressed length up front (§1 Non-goals), and writes
// the compressed stream to dst. This mirrors original_source/crook.cpp's
// Compress: seek to the end to measure, seek back to the start, then
// drive the bit loop byte by byte.
func Compress(dst io.Writer, src io.ReadSeeker, opts Options, progress Progress) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	textLength, err := measure(src)
	if err != nil {
		return errors.Wrap(err, "crook: measuring input")
	}

	enc, err := ppm.NewEncoder(dst, textLength, opts.MemoryLimit, opts.OrderLimit)
	if err != nil {
		return errors.Wrap(err, "crook: initializing encoder")
	}

	buf := make([]byte, 1)
	for processed := uint32(0); processed != textLength; processed++ {
		progress.report(processed, textLength, enc.UsedMemoryMiB())

		if _, err := io.ReadFull(src, buf); err != nil {
			return errors.Wrap(err, "crook: reading input")
		}
		if err := enc.EncodeByte(buf[0]); err != nil {
			return errors.Wrap(err, "crook: compressing")
		}
	}

	if err := enc.Flush(); err != nil {
		return errors.Wrap(err, "crook: flushing compressed stream")
	}
	progress.report(textLength, textLength, enc.UsedMemoryMiB())
	return nil
}

// measure seeks to the end of src to determine its length (as ftell does
// in the original), then rewinds to the start.
func measure(src io.ReadSeeker) (uint32, error) {
	length, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if length < 0 || length > 0xFFFFFFFF {
		return 0, errors.Errorf("crook: input length %d out of range", length)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return uint32(length), nil
}
