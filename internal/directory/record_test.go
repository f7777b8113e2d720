package directory

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/wad/internal/wadtype"
)

func rawRecord(start, length int32, name string) []byte {
	raw := make([]byte, RecordSize)
	binary.LittleEndian.PutUint32(raw[0:4], uint32(start))  //nolint:gosec // test data
	binary.LittleEndian.PutUint32(raw[4:8], uint32(length)) //nolint:gosec // test data
	copy(raw[8:], name)
	return raw
}

func TestDecode(t *testing.T) {
	t.Parallel()

	rec := Decode(rawRecord(1234, 56, "THINGS"))
	assert.Equal(t, int32(1234), rec.Start)
	assert.Equal(t, int32(56), rec.Length)
	assert.Equal(t, wadtype.MustParseID("things"), rec.ID)
	assert.Equal(t, rec.ID, DecodeID(rawRecord(0, 0, "THINGS")))
}

func TestDecode_NegativeFields(t *testing.T) {
	t.Parallel()

	rec := Decode(rawRecord(-1, math.MinInt32, "X"))
	assert.Equal(t, int32(-1), rec.Start)
	assert.Equal(t, int32(math.MinInt32), rec.Length)
}

func TestRecord_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rec       Record
		dataLen   int
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{"simple", Record{Start: 12, Length: 4}, 16, 12, 16, false},
		{"ends at data end", Record{Start: 20, Length: 10}, 30, 20, 30, false},
		{"zero length bogus start", Record{Start: 0, Length: 0}, 12, 12, 12, false},
		{"zero length huge start", Record{Start: math.MaxInt32, Length: 0}, 12, 12, 12, false},
		{"negative length", Record{Start: 12, Length: -1}, 100, 0, 0, true},
		{"negative start", Record{Start: -12, Length: 1}, 100, 0, 0, true},
		{"inside header", Record{Start: 4, Length: 4}, 100, 0, 0, true},
		{"past data end", Record{Start: 12, Length: 5}, 16, 0, 0, true},
		{"max fields", Record{Start: math.MaxInt32, Length: math.MaxInt32}, 100, 0, 0, true},
		{"zero length small data", Record{Start: 12, Length: 0}, 8, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, end, err := tt.rec.Resolve(tt.dataLen)
			if tt.wantErr {
				require.ErrorIs(t, err, wadtype.ErrInvalidEntry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestDecodeHeader(t *testing.T) {
	t.Parallel()

	b := []byte{'P', 'W', 'A', 'D', 3, 0, 0, 0, 0x10, 0x01, 0, 0}
	h, err := DecodeHeader(b)
	require.NoError(t, err)
	assert.Equal(t, [4]byte{'P', 'W', 'A', 'D'}, h.Magic)
	assert.Equal(t, int32(3), h.Count)
	assert.Equal(t, int32(0x110), h.DirOffset)

	count, dirOffset, total, err := h.Layout()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 0x110, dirOffset)
	assert.Equal(t, 0x110+3*RecordSize, total)

	_, err = DecodeHeader(b[:11])
	require.ErrorIs(t, err, wadtype.ErrInvalidLength)
}

func TestHeader_LayoutNegative(t *testing.T) {
	t.Parallel()

	_, _, _, err := Header{Count: -1, DirOffset: 12}.Layout()
	require.ErrorIs(t, err, wadtype.ErrInvalid)

	_, _, _, err = Header{Count: 1, DirOffset: -12}.Layout()
	require.ErrorIs(t, err, wadtype.ErrInvalid)
}
