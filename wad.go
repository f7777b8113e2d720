package wad

import (
	"github.com/opencontainers/go-digest"

	"github.com/meigma/wad/internal/directory"
)

// Header and record sizes of the on-disk format.
const (
	HeaderSize = directory.HeaderSize
	RecordSize = directory.RecordSize
)

// Wad is a parsed WAD file held in memory.
//
// A Wad owns its buffer: the header, the payload region, and the directory,
// truncated to the length implied by the header. It is immutable and safe
// for concurrent use.
type Wad struct {
	kind      Kind
	data      []byte
	dirOffset int
	count     int
}

// Parse validates the header of data and returns a Wad backed by it.
//
// The header must carry the IWAD or PWAD magic, non-negative entry count
// and directory offset, and the directory must fit inside data. Bytes past
// the end of the directory are discarded.
//
// The provided data is retained by the Wad; callers must not modify it
// after calling Parse. Directory records are not validated until they are
// accessed.
func Parse(data []byte, opts ...Option) (*Wad, error) {
	cfg := newConfig(opts)

	hdr, err := directory.DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	kind, ok := KindFromMagic(hdr.Magic)
	if !ok {
		return nil, ErrInvalidHeader
	}
	count, dirOffset, total, err := hdr.Layout()
	if err != nil {
		return nil, err
	}
	if len(data) < total {
		return nil, ErrInvalidLength
	}
	if extra := len(data) - total; extra > 0 {
		cfg.log().Debug("discarding trailing bytes", "bytes", extra)
	}

	w := &Wad{
		kind:      kind,
		data:      data[:total:total],
		dirOffset: dirOffset,
		count:     count,
	}
	cfg.log().Debug("parsed wad", "kind", kind, "entries", count, "size", total)
	return w, nil
}

// Kind returns the header variant of the file.
func (w *Wad) Kind() Kind {
	return w.kind
}

// Len returns the number of directory entries.
func (w *Wad) Len() int {
	return w.count
}

// Size returns the logical length of the file in bytes.
func (w *Wad) Size() int {
	return len(w.data)
}

// Bytes returns the logical file contents.
// The returned slice aliases the Wad buffer and must be treated as immutable.
func (w *Wad) Bytes() []byte {
	return w.data
}

// Digest returns the sha256 digest of the logical file contents.
func (w *Wad) Digest() digest.Digest {
	return digest.FromBytes(w.data)
}

// View returns a View over the entire directory and payload region.
func (w *Wad) View() View {
	return View{
		data: w.data[:w.dirOffset:w.dirOffset],
		dir:  w.data[w.dirOffset:],
	}
}

// Entry returns the entry at index i.
func (w *Wad) Entry(i int) (Entry, error) {
	return w.View().Entry(i)
}

// IndexOf returns the index of the first entry named id.
func (w *Wad) IndexOf(id ID) (int, bool) {
	return w.View().IndexOf(id)
}

// Entries returns an iterator over all entries.
func (w *Wad) Entries() *EntryIterator {
	return w.View().Entries()
}

// IDs returns an iterator over the names of all entries.
func (w *Wad) IDs() *IDIterator {
	return w.View().IDs()
}
