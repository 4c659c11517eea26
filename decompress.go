package crook

import (
	"io"

	"github.com/crookcomp/crook/internal/ppm"
	"github.com/pkg/errors"
)

// Decompress reads a stream produced by Compress (with matching Options)
// and writes the recovered bytes to dst.
func Decompress(dst io.Writer, src io.Reader, opts Options, progress Progress) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	dec, err := ppm.NewDecoder(src, opts.MemoryLimit, opts.OrderLimit)
	if err != nil {
		return errors.Wrap(err, "crook: initializing decoder")
	}

	textLength := dec.TextLength
	buf := make([]byte, 1)
	for processed := uint32(0); processed != textLength; processed++ {
		progress.report(processed, textLength, dec.UsedMemoryMiB())

		c, err := dec.DecodeByte()
		if err != nil {
			return errors.Wrap(err, "crook: decompressing")
		}
		buf[0] = c
		if _, err := dst.Write(buf); err != nil {
			return errors.Wrap(err, "crook: writing output")
		}
	}
	progress.report(textLength, textLength, dec.UsedMemoryMiB())
	return nil
}
