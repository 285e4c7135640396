package stream

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/DataDog/zstd"
)

// Open returns a reader for the given input path. An empty path or "-" means
// stdin. Files ending in .gz or .zst are decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &decompressingFile{ReadCloser: zr, file: f}, nil
	case strings.HasSuffix(path, ".zst"):
		return &decompressingFile{ReadCloser: zstd.NewReader(f), file: f}, nil
	default:
		return f, nil
	}
}

// Create returns a writer for the given output path. An empty path or "-"
// means stdout; "stderr" selects the standard error stream. Closing a
// standard stream writer is a no-op.
func Create(path string) (io.WriteCloser, error) {
	switch path {
	case "", "-", "stdout":
		return nopCloser{os.Stdout}, nil
	case "stderr":
		return nopCloser{os.Stderr}, nil
	default:
		return os.Create(path)
	}
}

// decompressingFile closes both the decompressor and the underlying file.
type decompressingFile struct {
	io.ReadCloser
	file *os.File
}

func (d *decompressingFile) Close() error {
	err := d.ReadCloser.Close()
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	return err
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
