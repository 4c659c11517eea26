package fastio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")

	data := make([]byte, 200*1024)
	for i := range data {
		data[i] = byte(i * 7)
	}

	w, err := CreateWriter(path)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReaderSeek(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	end, err := r.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	assert.EqualValues(t, len("hello world"), end)

	_, err = r.Seek(0, io.SeekStart)
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))
}
