package directory

import (
	"encoding/binary"

	"github.com/meigma/wad/internal/sizing"
	"github.com/meigma/wad/internal/wadtype"
)

// HeaderSize is the size of the fixed WAD header in bytes.
const HeaderSize = 12

// Header is the decoded fixed header of a WAD file.
type Header struct {
	Magic     [4]byte
	Count     int32
	DirOffset int32
}

// DecodeHeader extracts the header fields from the first 12 bytes of b.
// It returns ErrInvalidLength if b is shorter than a header.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, wadtype.ErrInvalidLength
	}
	var h Header
	copy(h.Magic[:], b[0:4])
	h.Count = int32(binary.LittleEndian.Uint32(b[4:8]))      //nolint:gosec // signed on disk
	h.DirOffset = int32(binary.LittleEndian.Uint32(b[8:12])) //nolint:gosec // signed on disk
	return h, nil
}

// Layout validates the numeric header fields and returns the entry count,
// the directory offset, and the total logical length of the file.
func (h Header) Layout() (count, dirOffset, total int, err error) {
	if h.Count < 0 || h.DirOffset < 0 {
		return 0, 0, 0, wadtype.ErrInvalid
	}
	count = int(h.Count)
	dirOffset = int(h.DirOffset)

	dirLen, ok := sizing.MulInt(count, RecordSize)
	if !ok {
		return 0, 0, 0, wadtype.ErrInvalid
	}
	total, ok = sizing.AddInt(dirOffset, dirLen)
	if !ok {
		return 0, 0, 0, wadtype.ErrInvalid
	}
	return count, dirOffset, total, nil
}
