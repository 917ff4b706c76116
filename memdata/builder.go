package memdata

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/fielddata"
)

// Builder accumulates the per-document values of one field and freezes
// them into a Column. Documents arrive in ascending DocID order, one Add
// call per document; documents without values may simply be skipped.
type Builder[T fielddata.Width] struct {
	docs    *roaring.Bitmap
	offsets []uint32 // offsets[d]..offsets[d+1] delimit doc d's values
	values  []T
	lastDoc fielddata.DocID
	started bool
	multi   bool
}

// NewBuilder creates an empty Builder.
func NewBuilder[T fielddata.Width]() *Builder[T] {
	return &Builder[T]{docs: roaring.New()}
}

// Add records the values of doc. Calling Add with no values is the same
// as skipping the document.
func (b *Builder[T]) Add(doc fielddata.DocID, values ...T) error {
	if b.started && doc <= b.lastDoc {
		return fmt.Errorf("memdata: document %d added out of order (last was %d)", doc, b.lastDoc)
	}
	b.started = true
	b.lastDoc = doc

	if len(values) == 0 {
		return nil
	}

	// Pad skipped documents with empty ranges up to doc's start offset.
	for len(b.offsets) < int(doc)+1 {
		b.offsets = append(b.offsets, uint32(len(b.values)))
	}
	b.values = append(b.values, values...)
	b.offsets = append(b.offsets, uint32(len(b.values)))

	if len(values) > 1 {
		b.multi = true
	}
	b.docs.Add(doc)

	return nil
}

// Build freezes the accumulated data into a Column, picking the dense
// single-valued representation when no document carried more than one
// value. The builder must not be used afterwards.
func (b *Builder[T]) Build() Column[T] {
	maxDoc := 0
	if b.started {
		maxDoc = int(b.lastDoc) + 1
	}
	for len(b.offsets) < maxDoc+1 {
		b.offsets = append(b.offsets, uint32(len(b.values)))
	}

	if b.multi {
		return &multiColumn[T]{
			offsets: b.offsets,
			values:  b.values,
			docs:    b.docs,
		}
	}

	dense := make([]T, maxDoc)
	i := 0
	it := b.docs.Iterator()
	for it.HasNext() {
		dense[it.Next()] = b.values[i]
		i++
	}
	return &singleColumn[T]{
		values: dense,
		docs:   b.docs,
	}
}
