package stream

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/DataDog/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_PlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(data))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestOpen_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("compressed\ncontent\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	r, err := Open(path)
	require.NoError(t, err)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "compressed\ncontent\n", string(data))
	require.NoError(t, r.Close())
}

func TestOpen_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zstd.NewWriter(f)
	_, err = zw.Write([]byte("zstd\nlines\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	r, err := Open(path)
	require.NoError(t, err)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "zstd\nlines\n", string(data))
	require.NoError(t, r.Close())
}

func TestOpen_CorruptGzipFailsAtOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip at all"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
}

func TestCreate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w, err := Create(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("written\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "written\n", string(data))
}

func TestCreate_StandardStreams(t *testing.T) {
	for _, name := range []string{"", "-", "stdout", "stderr"} {
		w, err := Create(name)
		require.NoError(t, err, "Create(%q)", name)
		// closing a standard stream writer must be a no-op
		require.NoError(t, w.Close())
	}
}
