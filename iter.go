package wad

import (
	"iter"

	"github.com/meigma/wad/internal/directory"
)

// EntryIterator walks the entries of a View in directory order.
//
//	it := v.Entries()
//	for it.Next() {
//	    e := it.Entry()
//	    ...
//	}
//	if err := it.Err(); err != nil {
//	    ...
//	}
//
// Iteration stops at the first record whose payload range is invalid; Err
// reports it. An exhausted iterator keeps returning false. Create a new
// iterator to scan again.
type EntryIterator struct {
	v     View
	next  int
	entry Entry
	err   error
}

// Entries returns an iterator over the entries of v.
func (v View) Entries() *EntryIterator {
	return &EntryIterator{v: v}
}

// Next advances to the next entry and reports whether there is one.
func (it *EntryIterator) Next() bool {
	if it.err != nil || it.next >= it.v.Len() {
		it.entry = Entry{}
		return false
	}
	entry, err := it.v.entryAt(it.next)
	if err != nil {
		it.err = err
		it.entry = Entry{}
		return false
	}
	it.entry = entry
	it.next++
	return true
}

// Entry returns the current entry.
func (it *EntryIterator) Entry() Entry {
	return it.entry
}

// Index returns the index of the current entry within the view.
func (it *EntryIterator) Index() int {
	return it.next - 1
}

// Err returns the error that stopped iteration, if any.
func (it *EntryIterator) Err() error {
	return it.err
}

// IDIterator walks the names of a View's records in directory order
// without validating payload ranges.
type IDIterator struct {
	v    View
	next int
	id   ID
}

// IDs returns an iterator over the record names of v.
func (v View) IDs() *IDIterator {
	return &IDIterator{v: v}
}

// Next advances to the next name and reports whether there is one.
func (it *IDIterator) Next() bool {
	if it.next >= it.v.Len() {
		it.id = ID{}
		return false
	}
	it.id = directory.DecodeID(it.v.record(it.next))
	it.next++
	return true
}

// ID returns the current name.
func (it *IDIterator) ID() ID {
	return it.id
}

// Index returns the index of the current name within the view.
func (it *IDIterator) Index() int {
	return it.next - 1
}

// All returns a sequence of the entries of v.
//
// An invalid record is yielded as a zero Entry with its error and ends the
// sequence.
func (v View) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		it := v.Entries()
		for it.Next() {
			if !yield(it.Entry(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			yield(Entry{}, err)
		}
	}
}
