package testutil

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zstd"
)

// Lump is a named payload placed in a test WAD.
type Lump struct {
	Name string
	Data []byte
}

// Record is a raw directory record for crafting malformed WADs.
type Record struct {
	Start  int32
	Length int32
	Name   string
}

// Marker returns a zero-length lump, as used for map and section markers.
func Marker(name string) Lump {
	return Lump{Name: name}
}

// BuildWAD lays out lumps after the header, followed by the directory.
// Zero-length lumps are written with a start of 0, as real files often do.
func BuildWAD(magic string, lumps ...Lump) []byte {
	var payload bytes.Buffer
	records := make([]Record, 0, len(lumps))
	for _, l := range lumps {
		rec := Record{Name: l.Name, Length: int32(len(l.Data))} //nolint:gosec // test sizes are small
		if len(l.Data) > 0 {
			rec.Start = int32(12 + payload.Len()) //nolint:gosec // test sizes are small
			payload.Write(l.Data)
		}
		records = append(records, rec)
	}
	return BuildRaw(magic, payload.Bytes(), records...)
}

// BuildRaw writes a header, the payload starting at byte 12, and then the
// given records verbatim. The header's count and directory offset describe
// the records written.
func BuildRaw(magic string, payload []byte, records ...Record) []byte {
	return BuildHeader(magic, int32(len(records)), int32(12+len(payload)), payload, records...) //nolint:gosec // test sizes are small
}

// BuildHeader is like BuildRaw but takes explicit header fields, so the
// header may disagree with what follows.
func BuildHeader(magic string, count, dirOffset int32, payload []byte, records ...Record) []byte {
	var buf bytes.Buffer
	var hdr [12]byte
	copy(hdr[0:4], magic)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(count))      //nolint:gosec // raw test field
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(dirOffset)) //nolint:gosec // raw test field
	buf.Write(hdr[:])
	buf.Write(payload)
	for _, r := range records {
		var raw [16]byte
		binary.LittleEndian.PutUint32(raw[0:4], uint32(r.Start))  //nolint:gosec // raw test field
		binary.LittleEndian.PutUint32(raw[4:8], uint32(r.Length)) //nolint:gosec // raw test field
		copy(raw[8:], r.Name)
		buf.Write(raw[:])
	}
	return buf.Bytes()
}

// Compress returns data as a single zstd stream.
func Compress(tb testing.TB, data []byte) []byte {
	tb.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		tb.Fatalf("create encoder: %v", err)
	}
	if _, err := enc.Write(data); err != nil {
		tb.Fatalf("compress: %v", err)
	}
	if err := enc.Close(); err != nil {
		tb.Fatalf("close encoder: %v", err)
	}
	return buf.Bytes()
}
