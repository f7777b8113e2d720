package wadtype

import (
	"errors"
	"fmt"
)

// ErrFormat is the base error for malformed WAD data.
// Every format error below matches it with errors.Is.
var ErrFormat = errors.New("wad: invalid file")

var (
	// ErrInvalidHeader is returned when the header magic is not IWAD or PWAD.
	ErrInvalidHeader = fmt.Errorf("%w: unrecognized header", ErrFormat)

	// ErrInvalidLength is returned when declared sizes exceed the data.
	ErrInvalidLength = fmt.Errorf("%w: truncated data", ErrFormat)

	// ErrInvalid is returned for negative or overflowing header fields.
	ErrInvalid = fmt.Errorf("%w: bad header field", ErrFormat)

	// ErrInvalidEntry is returned when a directory record's range is out of bounds.
	ErrInvalidEntry = fmt.Errorf("%w: bad directory entry", ErrFormat)

	// ErrDecompression is returned when a compressed WAD cannot be decoded.
	ErrDecompression = fmt.Errorf("%w: decompression failed", ErrFormat)
)

var (
	// ErrOutOfBounds is returned when an index or range exceeds the entry count.
	ErrOutOfBounds = errors.New("wad: index out of bounds")

	// ErrSizeOverflow is returned when input exceeds the configured size limit.
	ErrSizeOverflow = errors.New("wad: size limit exceeded")
)
