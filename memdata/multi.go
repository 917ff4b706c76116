package memdata

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/fielddata"
)

// multiColumn stores any number of values per document: a flat value
// array plus per-document offsets, so doc d's values live in
// values[offsets[d]:offsets[d+1]].
type multiColumn[T fielddata.Width] struct {
	offsets []uint32 // len = maxDoc+1
	values  []T
	docs    *roaring.Bitmap
}

func (c *multiColumn[T]) Reader() fielddata.Values[T] {
	return &multiReader[T]{col: c}
}

func (c *multiColumn[T]) Docs() *roaring.Bitmap { return c.docs }

func (c *multiColumn[T]) ValueCount() int { return len(c.values) }

func (c *multiColumn[T]) IsMultiValued() bool { return true }

// docValues returns the shared backing slice for doc, empty when absent.
func (c *multiColumn[T]) docValues(doc fielddata.DocID) []T {
	if int(doc) >= len(c.offsets)-1 {
		return nil
	}
	return c.values[c.offsets[doc]:c.offsets[doc+1]]
}

// multiReader is a per-consumer accessor over a multiColumn.
type multiReader[T fielddata.Width] struct {
	col *multiColumn[T]
	it  fielddata.SliceIter[T]
}

func (r *multiReader[T]) IsMultiValued() bool { return true }

func (r *multiReader[T]) HasValue(doc fielddata.DocID) bool {
	return r.col.docs.Contains(doc)
}

func (r *multiReader[T]) Value(doc fielddata.DocID) (T, error) {
	vals := r.col.docValues(doc)
	if len(vals) == 0 {
		var zero T
		return zero, errNoValue(doc)
	}
	return vals[0], nil
}

func (r *multiReader[T]) ValueOr(doc fielddata.DocID, missing T) T {
	vals := r.col.docValues(doc)
	if len(vals) == 0 {
		return missing
	}
	return vals[0]
}

func (r *multiReader[T]) DocValues(doc fielddata.DocID) []T {
	return r.col.docValues(doc)
}

func (r *multiReader[T]) Iter(doc fielddata.DocID) fielddata.Iter[T] {
	vals := r.col.docValues(doc)
	if len(vals) == 0 {
		return fielddata.EmptyIter[T]()
	}
	return r.it.Reset(vals)
}

func (r *multiReader[T]) ForEachValue(doc fielddata.DocID, proc fielddata.ValueProc[T]) {
	vals := r.col.docValues(doc)
	if len(vals) == 0 {
		proc.OnMissing(doc)
		return
	}
	for _, v := range vals {
		proc.OnValue(doc, v)
	}
}
