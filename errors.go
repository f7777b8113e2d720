package wad

import "github.com/meigma/wad/internal/wadtype"

// Sentinel errors re-exported from internal/wadtype.
var (
	// ErrFormat matches every error caused by malformed WAD data.
	ErrFormat = wadtype.ErrFormat

	// ErrInvalidHeader is returned when the header magic is not IWAD or PWAD.
	ErrInvalidHeader = wadtype.ErrInvalidHeader

	// ErrInvalidLength is returned when the data is shorter than its header declares.
	ErrInvalidLength = wadtype.ErrInvalidLength

	// ErrInvalid is returned for negative or overflowing header fields.
	ErrInvalid = wadtype.ErrInvalid

	// ErrInvalidEntry is returned when a directory record points outside the payload.
	ErrInvalidEntry = wadtype.ErrInvalidEntry

	// ErrDecompression is returned when a compressed WAD cannot be decoded.
	ErrDecompression = wadtype.ErrDecompression

	// ErrOutOfBounds is returned for an index or range beyond the entry count.
	ErrOutOfBounds = wadtype.ErrOutOfBounds

	// ErrSizeOverflow is returned when input exceeds the configured size limit.
	ErrSizeOverflow = wadtype.ErrSizeOverflow
)
