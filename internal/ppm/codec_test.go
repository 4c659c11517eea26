package ppm

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, data []byte, memoryLimit, orderLimit int) []byte {
	t.Helper()

	var compressed bytes.Buffer
	enc, err := NewEncoder(&compressed, uint32(len(data)), memoryLimit, orderLimit)
	require.NoError(t, err)
	for _, c := range data {
		require.NoError(t, enc.EncodeByte(c))
	}
	require.NoError(t, enc.Flush())

	dec, err := NewDecoder(bytes.NewReader(compressed.Bytes()), memoryLimit, orderLimit)
	require.NoError(t, err)
	require.Equal(t, uint32(len(data)), dec.TextLength)

	out := make([]byte, dec.TextLength)
	for i := range out {
		b, err := dec.DecodeByte()
		require.NoError(t, err)
		out[i] = b
	}
	return out
}

func TestRoundTripEmpty(t *testing.T) {
	var compressed bytes.Buffer
	enc, err := NewEncoder(&compressed, 0, 128, 4)
	require.NoError(t, err)
	require.NoError(t, enc.Flush())

	// 4-byte zero length, the leading flux byte, then the four bytes of
	// low from the flush tail: exactly 9 bytes.
	require.Len(t, compressed.Bytes(), 9)
	assert.Equal(t, []byte{0, 0, 0, 0}, compressed.Bytes()[:4])
	assert.Equal(t, byte(0), compressed.Bytes()[4])

	dec, err := NewDecoder(bytes.NewReader(compressed.Bytes()), 128, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), dec.TextLength)
}

func TestRoundTripSingleByte(t *testing.T) {
	out := roundTrip(t, []byte{0x00}, 128, 4)
	assert.Equal(t, []byte{0x00}, out)
}

func TestRoundTripRepeatedBytes(t *testing.T) {
	data := bytes.Repeat([]byte{0x41}, 1024)

	var compressed bytes.Buffer
	enc, err := NewEncoder(&compressed, uint32(len(data)), 128, 4)
	require.NoError(t, err)
	for _, c := range data {
		require.NoError(t, enc.EncodeByte(c))
	}
	require.NoError(t, enc.Flush())
	assert.Less(t, compressed.Len(), len(data), "repeated bytes should compress well")

	out := roundTrip(t, data, 128, 4)
	assert.Equal(t, data, out)
}

func TestRoundTripRandomBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 1024)
	rng.Read(data)

	out := roundTrip(t, data, 128, 4)
	assert.Equal(t, data, out)
}

func TestRoundTripLengthEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{0x100, 0x10000} {
		data := make([]byte, n)
		rng.Read(data)
		out := roundTrip(t, data, 128, 4)
		assert.Equal(t, data, out)
	}
}

func TestRoundTripTightMemory(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	data := make([]byte, 256*1024)
	rng.Read(data)

	out := roundTrip(t, data, 1, 4)
	assert.Equal(t, data, out)
}

func TestRoundTripOrderZero(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	data := make([]byte, 4096)
	rng.Read(data)

	out := roundTrip(t, data, 128, 0)
	assert.Equal(t, data, out)

	var zeroOrder, order4 bytes.Buffer
	enc0, err := NewEncoder(&zeroOrder, uint32(len(data)), 128, 0)
	require.NoError(t, err)
	for _, c := range data {
		require.NoError(t, enc0.EncodeByte(c))
	}
	require.NoError(t, enc0.Flush())

	enc4, err := NewEncoder(&order4, uint32(len(data)), 128, 4)
	require.NoError(t, err)
	for _, c := range data {
		require.NoError(t, enc4.EncodeByte(c))
	}
	require.NoError(t, enc4.Flush())

	assert.NotEqual(t, zeroOrder.Bytes(), order4.Bytes())
}

func TestDeterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, twice over the lazy dog")

	var a, b bytes.Buffer
	enc1, err := NewEncoder(&a, uint32(len(data)), 128, 4)
	require.NoError(t, err)
	for _, c := range data {
		require.NoError(t, enc1.EncodeByte(c))
	}
	require.NoError(t, enc1.Flush())

	enc2, err := NewEncoder(&b, uint32(len(data)), 128, 4)
	require.NoError(t, err)
	for _, c := range data {
		require.NoError(t, enc2.EncodeByte(c))
	}
	require.NoError(t, enc2.Flush())

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestTruncatedStreamIsReported(t *testing.T) {
	data := bytes.Repeat([]byte{0x7A}, 64)

	var compressed bytes.Buffer
	enc, err := NewEncoder(&compressed, uint32(len(data)), 128, 4)
	require.NoError(t, err)
	for _, c := range data {
		require.NoError(t, enc.EncodeByte(c))
	}
	require.NoError(t, enc.Flush())

	truncated := compressed.Bytes()[:compressed.Len()-2]
	dec, err := NewDecoder(bytes.NewReader(truncated), 128, 4)
	require.NoError(t, err)

	var decodeErr error
	for i := 0; i < len(data); i++ {
		if _, decodeErr = dec.DecodeByte(); decodeErr != nil {
			break
		}
	}
	require.ErrorIs(t, decodeErr, ErrTruncatedStream)
}
