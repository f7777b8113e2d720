package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/wad/internal/testutil"
	"github.com/meigma/wad/internal/wadtype"
)

func TestIsZstd(t *testing.T) {
	t.Parallel()

	assert.True(t, IsZstd(testutil.Compress(t, []byte("PWAD"))))
	assert.False(t, IsZstd([]byte("PWAD\x00\x00\x00\x00")))
	assert.False(t, IsZstd([]byte{0x28, 0xB5}))
	assert.False(t, IsZstd(nil))
}

func TestDecompress(t *testing.T) {
	t.Parallel()

	original := bytes.Repeat([]byte("IWAD lump data "), 200)
	compressed := testutil.Compress(t, original)

	got, err := Decompress(compressed, Options{})
	require.NoError(t, err)
	assert.Equal(t, original, got)

	got, err = Decompress(compressed, Options{MaxSize: uint64(len(original)), MaxDecoderMemory: 1 << 20})
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestDecompress_SizeLimit(t *testing.T) {
	t.Parallel()

	original := bytes.Repeat([]byte{0}, 4096)
	_, err := Decompress(testutil.Compress(t, original), Options{MaxSize: 4095})
	require.ErrorIs(t, err, wadtype.ErrSizeOverflow)
}

func TestDecompress_InvalidData(t *testing.T) {
	t.Parallel()

	corrupt := append([]byte{0x28, 0xB5, 0x2F, 0xFD}, bytes.Repeat([]byte{0xff}, 32)...)
	_, err := Decompress(corrupt, Options{})
	require.ErrorIs(t, err, wadtype.ErrDecompression)
	require.ErrorIs(t, err, wadtype.ErrFormat)
}
