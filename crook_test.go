package crook

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 8192)
	rng.Read(data)

	opts := DefaultOptions()

	var compressed bytes.Buffer
	require.NoError(t, Compress(&compressed, bytes.NewReader(data), opts, nil))

	var out bytes.Buffer
	require.NoError(t, Decompress(&out, bytes.NewReader(compressed.Bytes()), opts, nil))

	assert.Equal(t, data, out.Bytes())
}

func TestReaderWriterRoundTrip(t *testing.T) {
	data := []byte("round trip through the io.Reader/io.Writer wrappers")
	opts := DefaultOptions()

	var compressed bytes.Buffer
	w := NewWriter(&compressed, opts)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewReader(bytes.NewReader(compressed.Bytes()), opts)
	require.NoError(t, err)
	require.Equal(t, uint32(len(data)), r.Len())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	assert.Error(t, Options{MemoryLimit: 0, OrderLimit: 4}.Validate())
	assert.Error(t, Options{MemoryLimit: 128, OrderLimit: -1}.Validate())
	assert.Error(t, Options{MemoryLimit: -5, OrderLimit: 4}.Validate())
}

func TestProgressCallbackSeesFullRange(t *testing.T) {
	data := bytes.Repeat([]byte{0x10, 0x20, 0x30}, 100)
	opts := DefaultOptions()

	var firstSeen, lastSeen uint32
	var calls int
	progress := func(processed, total, memoryMiB uint32) {
		calls++
		if calls == 1 {
			firstSeen = processed
		}
		lastSeen = processed
		assert.Equal(t, uint32(len(data)), total)
	}

	var compressed bytes.Buffer
	require.NoError(t, Compress(&compressed, bytes.NewReader(data), opts, progress))

	assert.Equal(t, uint32(0), firstSeen)
	assert.Equal(t, uint32(len(data)), lastSeen)
	assert.GreaterOrEqual(t, calls, 2)
}
