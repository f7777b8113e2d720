package wad

import (
	"errors"
	"fmt"

	"github.com/meigma/wad/internal/directory"
)

// View is a read-only window over a contiguous range of directory records
// and the payload region they point into.
//
// Records are resolved against the View's own payload region, so a View
// produced by Slice exposes only its own records and bounds-checks them the
// same way the full Wad does. The zero View is empty.
type View struct {
	data []byte // payload region, [0, dirOffset) of the file
	dir  []byte // RecordSize-aligned directory records
}

// Len returns the number of records in the view.
func (v View) Len() int {
	return len(v.dir) / directory.RecordSize
}

// record returns the raw bytes of record i. i must be in range.
func (v View) record(i int) []byte {
	off := i * directory.RecordSize
	return v.dir[off : off+directory.RecordSize]
}

// Entry returns the entry at index i, validating its payload range.
func (v View) Entry(i int) (Entry, error) {
	if i < 0 || i >= v.Len() {
		return Entry{}, fmt.Errorf("entry %d of %d: %w", i, v.Len(), ErrOutOfBounds)
	}
	return v.entryAt(i)
}

// entryAt resolves record i without checking that i is in range.
// Callers must guarantee 0 <= i < v.Len().
func (v View) entryAt(i int) (Entry, error) {
	rec := directory.Decode(v.record(i))
	start, end, err := rec.Resolve(len(v.data))
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d (%s): %w", i, rec.ID, err)
	}
	return Entry{ID: rec.ID, Lump: v.data[start:end:end]}, nil
}

// ID returns the name of record i without validating its payload range.
func (v View) ID(i int) (ID, bool) {
	if i < 0 || i >= v.Len() {
		return ID{}, false
	}
	return directory.DecodeID(v.record(i)), true
}

// IndexOf returns the index of the first record named id.
func (v View) IndexOf(id ID) (int, bool) {
	for i := range v.Len() {
		if directory.DecodeID(v.record(i)) == id {
			return i, true
		}
	}
	return -1, false
}

// Slice returns a view of records [lo, hi) of v.
//
// The indexes are relative to v and the payload region is shared. Slice
// returns ErrOutOfBounds unless 0 <= lo <= hi <= v.Len().
func (v View) Slice(lo, hi int) (View, error) {
	if lo < 0 || hi < lo || hi > v.Len() {
		return View{}, fmt.Errorf("slice [%d:%d] of %d: %w", lo, hi, v.Len(), ErrOutOfBounds)
	}
	return View{
		data: v.data,
		dir:  v.dir[lo*directory.RecordSize : hi*directory.RecordSize : hi*directory.RecordSize],
	}, nil
}

// Verify resolves every record in the view.
//
// It returns nil if all records are valid, or the joined errors of every
// invalid record.
func (v View) Verify() error {
	var errs []error
	for i := range v.Len() {
		if _, err := v.entryAt(i); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
