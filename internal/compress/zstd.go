// Package compress detects and decodes zstd-compressed WAD images.
package compress

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/meigma/wad/internal/sizing"
	"github.com/meigma/wad/internal/wadtype"
)

// zstdMagic is the little-endian frame magic 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// IsZstd reports whether b starts with a zstd frame.
func IsZstd(b []byte) bool {
	return bytes.HasPrefix(b, zstdMagic)
}

// Options bounds the resources used while decoding.
// Zero values disable the corresponding limit.
type Options struct {
	MaxSize          uint64
	MaxDecoderMemory uint64
}

// Decompress decodes a complete zstd stream held in memory.
//
// The decoded size is capped at opts.MaxSize; larger output returns
// ErrSizeOverflow. Malformed input returns ErrDecompression.
func Decompress(compressed []byte, opts Options) ([]byte, error) {
	decOpts := []zstd.DOption{
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	}
	if opts.MaxDecoderMemory != 0 {
		decOpts = append(decOpts, zstd.WithDecoderMaxMemory(opts.MaxDecoderMemory))
	}
	dec, err := zstd.NewReader(bytes.NewReader(compressed), decOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wadtype.ErrDecompression, err) //nolint:errorlint // sentinel carries the kind
	}
	defer dec.Close()

	data, err := sizing.ReadAllWithLimit(dec, opts.MaxSize, wadtype.ErrSizeOverflow)
	if err != nil {
		if err == wadtype.ErrSizeOverflow { //nolint:errorlint // returned unwrapped
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", wadtype.ErrDecompression, err) //nolint:errorlint // sentinel carries the kind
	}
	return data, nil
}
