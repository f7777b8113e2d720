// Package wad reads WAD container files.
//
// A WAD file is a 12-byte header, a blob of opaque lumps, and a flat
// directory of 16-byte records mapping 8-byte names to byte ranges in the
// blob. The whole file is held in memory; nothing is decoded beyond the
// directory.
//
// # Quick Start
//
//	w, err := wad.Load("doom.wad")
//	if err != nil {
//	    return err
//	}
//	idx, ok := w.IndexOf(wad.MustParseID("PLAYPAL"))
//	if !ok {
//	    return errors.New("no palette")
//	}
//	e, err := w.Entry(idx)
//
// # Views
//
// [Wad.View] returns a [View] over the entire directory. Slicing a View
// yields a narrower View that behaves like an independent container: it
// exposes only the selected records and bounds-checks their payloads the
// same way. The locator subpackage builds queries such as "e1m3+linedefs"
// on top of this.
//
// A Wad is immutable after construction and safe for concurrent use.
// Views, entries, and iterators alias its buffer and must be treated as
// read-only.
//
// Compressed files (a single zstd stream wrapping a WAD) are detected and
// decoded by [Load] and [Read].
package wad
