package wad

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/meigma/wad/internal/compress"
	"github.com/meigma/wad/internal/sizing"
)

// Load reads the named file into memory and parses it.
//
// Files holding a single zstd stream are decompressed first. Errors are
// returned as *fs.PathError. Malformed content matches ErrFormat with
// errors.Is; I/O failures carry the underlying os error instead.
func Load(path string, opts ...Option) (*Wad, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &fs.PathError{Op: "load", Path: path, Err: unwrapPathError(err)}
	}
	defer f.Close()

	w, err := Read(f, opts...)
	if err != nil {
		return nil, &fs.PathError{Op: "load", Path: path, Err: unwrapPathError(err)}
	}
	return w, nil
}

// Read reads r to EOF and parses the result.
//
// Input larger than the configured maximum file size fails with
// ErrSizeOverflow. Input starting with a zstd frame is decompressed.
func Read(r io.Reader, opts ...Option) (*Wad, error) {
	cfg := newConfig(opts)

	data, err := sizing.ReadAllWithLimit(r, cfg.maxFileSize, ErrSizeOverflow)
	if err != nil {
		return nil, err
	}
	if compress.IsZstd(data) {
		compressed := len(data)
		data, err = compress.Decompress(data, compress.Options{
			MaxSize:          cfg.maxFileSize,
			MaxDecoderMemory: cfg.maxDecoderMemory,
		})
		if err != nil {
			return nil, err
		}
		cfg.log().Debug("decompressed wad", "compressed", compressed, "size", len(data))
	}

	w, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return w, nil
}

// unwrapPathError strips an inner *fs.PathError so Load reports the path once.
func unwrapPathError(err error) error {
	if pe, ok := err.(*fs.PathError); ok { //nolint:errorlint // only the outermost layer
		return pe.Err
	}
	return err
}
