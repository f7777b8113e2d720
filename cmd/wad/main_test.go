package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/wad/internal/testutil"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeWAD(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wad")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func mapWAD() []byte {
	return testutil.BuildWAD("PWAD",
		testutil.Lump{Name: "LINEDEFS", Data: []byte("early")},
		testutil.Marker("E1M3"),
		testutil.Lump{Name: "THINGS", Data: bytes.Repeat([]byte{1}, 2048)},
		testutil.Lump{Name: "LINEDEFS", Data: []byte("late")},
		testutil.Marker("F_START"),
		testutil.Lump{Name: "STEP1", Data: []byte("flat")},
		testutil.Marker("F_END"),
	)
}

func TestLs(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "ls", writeWAD(t, mapWAD()))
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"0\t5\tLINEDEFS",
		"1\t0\tE1M3",
		"2\t2048\tTHINGS",
		"3\t4\tLINEDEFS",
		"4\t0\tF_START",
		"5\t4\tSTEP1",
		"6\t0\tF_END",
	}, "\n")+"\n", out)
}

func TestLs_HumanAndDigest(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "ls", "--human", "--digest", writeWAD(t, mapWAD()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "2\t2.0 KiB\tTHINGS\t"+digest.FromBytes(bytes.Repeat([]byte{1}, 2048)).String(), lines[2])
	assert.Equal(t, "3\t4 B\tLINEDEFS\t"+digest.FromString("late").String(), lines[3])
}

func TestLs_Compressed(t *testing.T) {
	t.Parallel()

	path := writeWAD(t, testutil.Compress(t, mapWAD()))
	out, _, err := run(t, "ls", path)
	require.NoError(t, err)
	assert.Contains(t, out, "5\t4\tSTEP1\n")
}

func TestLs_InvalidEntry(t *testing.T) {
	t.Parallel()

	data := testutil.BuildRaw("PWAD", nil,
		testutil.Record{Name: "OK"},
		testutil.Record{Start: 12, Length: 8, Name: "BAD"},
	)
	out, _, err := run(t, "ls", writeWAD(t, data))
	require.Error(t, err)
	assert.Equal(t, "0\t0\tOK\n", out)
}

func TestRead(t *testing.T) {
	t.Parallel()

	path := writeWAD(t, mapWAD())
	tests := []struct {
		lump string
		want string
	}{
		{"0", "early"},
		{"linedefs", "early"},
		{"e1m3+linedefs", "late"},
		{"f/step1", "flat"},
		{"5", "flat"},
	}
	for _, tt := range tests {
		t.Run(tt.lump, func(t *testing.T) {
			t.Parallel()
			out, _, err := run(t, "read", path, tt.lump)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	path := writeWAD(t, mapWAD())
	for _, lump := range []string{"7", "sectors", "e1m1+things", "toolongname", "f/"} {
		_, stderr, err := run(t, "read", path, lump)
		require.Error(t, err, "lump %q", lump)
		assert.Contains(t, stderr, "Error:")
	}

	_, _, err := run(t, "read", filepath.Join(t.TempDir(), "missing.wad"), "0")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "check", writeWAD(t, mapWAD()))
	require.NoError(t, err)
	assert.Contains(t, out, "ok (PWAD, 7 entries, sha256:")

	data := testutil.BuildRaw("PWAD", []byte("ab"),
		testutil.Record{Start: 12, Length: 2, Name: "OK"},
		testutil.Record{Start: 13, Length: 2, Name: "BAD1"},
		testutil.Record{Start: -1, Length: 2, Name: "BAD2"},
	)
	out, _, err = run(t, "check", writeWAD(t, data))
	require.Error(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "entry 1 (BAD1)")
	assert.Contains(t, lines[1], "entry 2 (BAD2)")
}

func TestExtract(t *testing.T) {
	t.Parallel()

	path := writeWAD(t, mapWAD())
	dest := t.TempDir()

	out, _, err := run(t, "extract", path, dest)
	require.NoError(t, err)
	assert.Equal(t, "extracted 7 lumps (2.0 KiB), skipped 0\n", out)

	out, _, err = run(t, "extract", path, dest)
	require.NoError(t, err)
	assert.Equal(t, "extracted 0 lumps (0 B), skipped 7\n", out)
}

func TestExtract_Scope(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()
	_, _, err := run(t, "extract", "--scope", "f/", writeWAD(t, mapWAD()), dest)
	require.NoError(t, err)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "0000_STEP1.lmp", entries[0].Name())

	_, _, err = run(t, "extract", "--scope", "f", writeWAD(t, mapWAD()), t.TempDir())
	require.Error(t, err)
}

func TestMaxSize(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "--max-size", "16", "ls", writeWAD(t, mapWAD()))
	require.Error(t, err)
}

func TestVerbose(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "-v", "ls", writeWAD(t, mapWAD()))
	require.NoError(t, err)
	assert.Contains(t, stderr, "parsed wad")
}
