//go:build !linux && !darwin

package fastio

import (
	"bufio"
	"os"
)

// On platforms without an unlocked-stdio-equivalent win available through
// golang.org/x/sys/unix, fall back to a plain buffered os.File. os.File
// itself still avoids the glibc putc/getc per-call lock the original C++
// works around, so this is not a regression, just not the raw-fd path.

type reader struct {
	f *os.File
	*bufio.Reader
}

// OpenReader opens path for buffered reading.
func OpenReader(path string) (ReadSeekCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &reader{f: f, Reader: bufio.NewReaderSize(f, bufSize)}, nil
}

func (r *reader) Seek(offset int64, whence int) (int64, error) {
	r.Reader.Reset(r.f)
	return r.f.Seek(offset, whence)
}

func (r *reader) Close() error { return r.f.Close() }

type writer struct {
	f *os.File
	*bufio.Writer
}

const bufSize = 64 * 1024

// CreateWriter creates (or truncates) path for buffered writing.
func CreateWriter(path string) (WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &writer{f: f, Writer: bufio.NewWriterSize(f, bufSize)}, nil
}

func (w *writer) Close() error {
	if err := w.Writer.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
