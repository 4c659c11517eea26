//go:build linux || darwin

package fastio

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const bufSize = 64 * 1024

// reader buffers raw unix.Read calls on a file descriptor.
type reader struct {
	f       *os.File
	fd      int
	buf     []byte
	r, w    int
	readErr error
}

// OpenReader opens path for reading with a raw-fd buffered reader.
func OpenReader(path string) (ReadSeekCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &reader{f: f, fd: int(f.Fd()), buf: make([]byte, bufSize)}, nil
}

func (r *reader) Read(p []byte) (int, error) {
	if r.r == r.w {
		if r.readErr != nil {
			return 0, r.readErr
		}
		n, err := unix.Read(r.fd, r.buf)
		if err != nil {
			r.readErr = errors.Wrap(err, "fastio: read")
			return 0, r.readErr
		}
		if n == 0 {
			r.readErr = io.EOF
			return 0, io.EOF
		}
		r.r, r.w = 0, n
	}
	n := copy(p, r.buf[r.r:r.w])
	r.r += n
	return n, nil
}

func (r *reader) Seek(offset int64, whence int) (int64, error) {
	r.r, r.w = 0, 0
	r.readErr = nil
	return r.f.Seek(offset, whence)
}

func (r *reader) Close() error {
	return r.f.Close()
}

// writer buffers raw unix.Write calls on a file descriptor.
type writer struct {
	f   *os.File
	fd  int
	buf []byte
	n   int
}

// CreateWriter creates (or truncates) path for writing with a raw-fd
// buffered writer.
func CreateWriter(path string) (WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &writer{f: f, fd: int(f.Fd()), buf: make([]byte, bufSize)}, nil
}

func (w *writer) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		n := copy(w.buf[w.n:], p)
		w.n += n
		p = p[n:]
		total += n
		if w.n == len(w.buf) {
			if err := w.flush(); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

func (w *writer) flush() error {
	for w.n > 0 {
		n, err := unix.Write(w.fd, w.buf[:w.n])
		if err != nil {
			return errors.Wrap(err, "fastio: write")
		}
		copy(w.buf, w.buf[n:w.n])
		w.n -= n
	}
	return nil
}

func (w *writer) Close() error {
	if err := w.flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
