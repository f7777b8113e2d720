package wad

import "github.com/meigma/wad/internal/wadtype"

// Re-export types from internal/wadtype for public API.
type (
	// ID is the 8-byte name of a directory entry.
	ID = wadtype.ID

	// Kind identifies the header variant of a WAD file.
	Kind = wadtype.Kind
)

// Re-export kind constants.
const (
	KindIWAD = wadtype.KindIWAD
	KindPWAD = wadtype.KindPWAD
)

// Re-export ID constructors.
var (
	// ParseID normalizes text into an ID. It reports false for text longer
	// than 8 bytes or containing non-ASCII bytes.
	ParseID = wadtype.ParseID

	// MustParseID is like ParseID but panics on invalid input.
	MustParseID = wadtype.MustParseID

	// IDFromBytes wraps raw directory bytes without validation.
	IDFromBytes = wadtype.IDFromBytes
)

// KindFromMagic maps a 4-byte header tag to a Kind.
var KindFromMagic = wadtype.KindFromMagic
