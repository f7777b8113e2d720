package directory

import (
	"encoding/binary"

	"github.com/meigma/wad/internal/sizing"
	"github.com/meigma/wad/internal/wadtype"
)

// RecordSize is the size of one directory record in bytes.
const RecordSize = 16

// Record is a decoded directory record. The fields are exactly as stored
// on disk; use Resolve to validate the payload range.
type Record struct {
	Start  int32
	Length int32
	ID     wadtype.ID
}

// Decode extracts the fields of a 16-byte directory record.
// raw must hold at least RecordSize bytes.
func Decode(raw []byte) Record {
	_ = raw[RecordSize-1] // bounds check hint
	return Record{
		Start:  int32(binary.LittleEndian.Uint32(raw[0:4])), //nolint:gosec // signed on disk
		Length: int32(binary.LittleEndian.Uint32(raw[4:8])), //nolint:gosec // signed on disk
		ID:     DecodeID(raw),
	}
}

// DecodeID extracts only the identifier of a directory record.
func DecodeID(raw []byte) wadtype.ID {
	var id wadtype.ID
	copy(id[:], raw[8:RecordSize])
	return id
}

// Resolve validates the record against a payload region of dataLen bytes
// and returns the half-open byte range [start, end) of its lump.
//
// Zero-length records always resolve to an empty range at the end of the
// header, whatever start they carry on disk.
func (r Record) Resolve(dataLen int) (start, end int, err error) {
	if r.Length < 0 || r.Start < 0 {
		return 0, 0, wadtype.ErrInvalidEntry
	}
	start = int(r.Start)
	length := int(r.Length)
	if length == 0 {
		start = HeaderSize
	}
	if start < HeaderSize {
		return 0, 0, wadtype.ErrInvalidEntry
	}
	end, ok := sizing.AddInt(start, length)
	if !ok {
		return 0, 0, wadtype.ErrInvalidEntry
	}
	if end > dataLen {
		return 0, 0, wadtype.ErrInvalidEntry
	}
	return start, end, nil
}
