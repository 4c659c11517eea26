package ppm

import "github.com/pkg/errors"

// ErrTruncatedStream is returned by the decoder when the source is
// exhausted before the expected number of bits have been decoded. §7
// calls this out as a distinct error rather than silently producing
// garbage.
var ErrTruncatedStream = errors.New("ppm: truncated compressed stream")
