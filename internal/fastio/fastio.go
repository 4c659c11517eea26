// Package fastio provides buffered, syscall-level file I/O for the CLI's
// hot compress/decompress paths. spec.md §5 notes that "on platforms with
// un-locked stdio variants those are preferred purely for throughput" —
// the same observation original_source/config.hpp makes about redefining
// putc/getc to their _unlocked variants on glibc. Go's os.File already
// avoids libc's per-call locking, but it still goes through an extra
// layer of generality; on Linux and Darwin this package talks to the
// raw file descriptor through golang.org/x/sys/unix directly, with its
// own small buffer sized for the compressor's one-byte-at-a-time access
// pattern. Elsewhere it falls back to a plain buffered os.File (see
// fastio_other.go).
package fastio

import "io"

// ReadSeekCloser is what OpenReader returns: buffered reads plus the
// Seek the core's Compress needs to measure the input up front.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WriteCloser is what CreateWriter returns.
type WriteCloser interface {
	io.Writer
	io.Closer
}
