package crook

import (
	"bytes"
	"io"
)

// Writer compresses into dst incrementally. Because the format requires
// the uncompressed length up front (§1 Non-goals: no streaming of
// unknown-length inputs), Writer buffers everything written to it and
// only produces output on Close. Callers with inputs too large to
// buffer should use Compress directly against a seekable source instead.
type Writer struct {
	dst      io.Writer
	opts     Options
	buf      bytes.Buffer
	progress Progress
	closed   bool
}

// NewWriter creates a Writer. Options are validated lazily, on Close,
// alongside the other failure modes of the underlying Compress call.
func NewWriter(dst io.Writer, opts Options) *Writer {
	return &Writer{dst: dst, opts: opts}
}

// SetProgress attaches a progress callback used by the eventual Close.
func (w *Writer) SetProgress(p Progress) { w.progress = p }

func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close flushes the buffered plaintext through Compress. It is the only
// point at which the compressed stream is actually produced, and must be
// called exactly once.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return Compress(w.dst, bytes.NewReader(w.buf.Bytes()), w.opts, w.progress)
}
