package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// compressionExt returns the compression suffix of path, or "" when the path
// is not compressed
func compressionExt(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".zst", ".gz", ".sz":
		return filepath.Ext(path)
	}
	return ""
}

// fileSink closes the compressor before the file
type fileSink struct {
	io.Writer
	closers []io.Closer
}

func (f *fileSink) Close() error {
	var firstErr error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Create opens path for writing. Paths ending in .zst, .gz or .sz are
// compressed with zstd, gzip or framed snappy. "-" writes to stdout, which
// is never closed.
func Create(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	w, err := Compress(file, path)
	if err != nil {
		file.Close()
		return nil, err
	}
	if w == nil {
		return file, nil
	}
	return &fileSink{Writer: w, closers: []io.Closer{w, file}}, nil
}

// Compress wraps w with the compressor selected by the extension of path.
// It returns nil when path carries no compression suffix.
func Compress(w io.Writer, path string) (io.WriteCloser, error) {
	switch strings.ToLower(compressionExt(path)) {
	case ".zst":
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("creating zstd encoder: %w", err)
		}
		return encoder, nil
	case ".gz":
		return gzip.NewWriter(w), nil
	case ".sz":
		return snappy.NewBufferedWriter(w), nil
	}
	return nil, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
