package wadtype

import "bytes"

// IDSize is the width of a directory identifier in bytes.
const IDSize = 8

// ID is the fixed-width name of a directory entry.
//
// IDs are compared byte-for-byte. Raw IDs read from a directory are never
// rejected; invalid bytes only affect how the ID is displayed.
type ID [IDSize]byte

// ParseID normalizes user-supplied text into an ID.
//
// Lowercase ASCII letters are upper-cased and the result is right-padded
// with zero bytes. ParseID reports false if s is longer than 8 bytes or
// contains a non-ASCII byte.
func ParseID(s string) (ID, bool) {
	var id ID
	if len(s) > IDSize {
		return id, false
	}
	for i := range len(s) {
		c := s[i]
		if c >= 0x80 {
			return ID{}, false
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		id[i] = c
	}
	return id, true
}

// MustParseID is like ParseID but panics if s is not a valid ID.
func MustParseID(s string) ID {
	id, ok := ParseID(s)
	if !ok {
		panic("wad: invalid lump name " + s)
	}
	return id
}

// IDFromBytes returns the ID with the given raw bytes. No validation is done.
func IDFromBytes(b [IDSize]byte) ID {
	return ID(b)
}

// Bytes returns the raw identifier bytes.
func (id ID) Bytes() [IDSize]byte {
	return id
}

// String returns the display form of the ID.
//
// If any byte is outside the ASCII range the result is "?". Otherwise it is
// the bytes before the first zero byte.
func (id ID) String() string {
	for _, c := range id {
		if c >= 0x80 {
			return "?"
		}
	}
	if i := bytes.IndexByte(id[:], 0); i >= 0 {
		return string(id[:i])
	}
	return string(id[:])
}
