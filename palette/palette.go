// Package palette implements an insertion-ordered, deduplicating table
// mapping dense small-integer indices to item values.
//
// Indices are issued in insertion order starting at zero and are never
// reused or reassigned; the table only grows. A reverse map provides O(1)
// value-to-index lookup for deduplication.
package palette

import (
	"fmt"

	"github.com/arloliu/chroma/errs"
)

// Palette is a two-way mapping between dense indices and item values.
//
// A Palette is not safe for concurrent use.
type Palette struct {
	values  []uint64
	indices map[uint64]uint32
}

// New creates an empty Palette.
func New() *Palette {
	return &Palette{
		indices: make(map[uint64]uint32),
	}
}

// Restore creates a Palette holding the given values in index order, as
// produced by Values.
//
// Returns errs.ErrDuplicatePaletteValue if the same value appears twice;
// a palette with duplicates would make value lookup ambiguous.
func Restore(values []uint64) (*Palette, error) {
	p := &Palette{
		values:  make([]uint64, 0, len(values)),
		indices: make(map[uint64]uint32, len(values)),
	}
	for _, value := range values {
		if _, ok := p.indices[value]; ok {
			return nil, fmt.Errorf("%w: %d", errs.ErrDuplicatePaletteValue, value)
		}
		p.indices[value] = uint32(len(p.values))
		p.values = append(p.values, value)
	}

	return p, nil
}

// IndexOf returns the index for value, inserting it with the next sequential
// index if it has not been seen before.
func (p *Palette) IndexOf(value uint64) uint32 {
	if idx, ok := p.indices[value]; ok {
		return idx
	}

	idx := uint32(len(p.values))
	p.values = append(p.values, value)
	p.indices[value] = idx

	return idx
}

// Contains reports whether value has been inserted.
func (p *Palette) Contains(value uint64) bool {
	_, ok := p.indices[value]

	return ok
}

// ValueAt returns the value for a previously issued index.
//
// Calling ValueAt with an index that was never issued indicates a bug in the
// caller and panics.
func (p *Palette) ValueAt(index uint32) uint64 {
	if int(index) >= len(p.values) {
		panic(fmt.Sprintf("palette: index %d never issued (len %d)", index, len(p.values)))
	}

	return p.values[index]
}

// Len returns the number of distinct values inserted so far.
func (p *Palette) Len() int {
	return len(p.values)
}

// Values returns the inserted values in index order.
//
// The returned slice is the live backing store, valid until the next
// IndexOf. The caller must not modify it.
func (p *Palette) Values() []uint64 {
	return p.values
}

// Clone returns a deep copy of the Palette.
func (p *Palette) Clone() *Palette {
	values := make([]uint64, len(p.values))
	copy(values, p.values)

	indices := make(map[uint64]uint32, len(p.indices))
	for value, idx := range p.indices {
		indices[value] = idx
	}

	return &Palette{values: values, indices: indices}
}
