package wad

import (
	_ "crypto/sha256" // registers digest.Canonical

	"github.com/opencontainers/go-digest"
)

// Entry is a resolved directory entry.
//
// Lump aliases the Wad buffer and must be treated as immutable. Its
// capacity is clipped, so appending to it never overwrites neighbouring
// lumps.
type Entry struct {
	ID   ID
	Lump []byte
}

// Name returns the display name of the entry, or "?" when the name holds
// non-ASCII bytes.
func (e Entry) Name() string {
	return e.ID.String()
}

// Len returns the payload length in bytes.
func (e Entry) Len() int {
	return len(e.Lump)
}

// Digest returns the sha256 digest of the payload.
func (e Entry) Digest() digest.Digest {
	return digest.FromBytes(e.Lump)
}
