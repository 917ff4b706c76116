package memdata

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/fielddata"
)

// singleColumn stores at most one value per document: a dense array
// indexed by DocID plus a presence bitmap. Slots for absent documents
// hold the zero value and are never exposed.
type singleColumn[T fielddata.Width] struct {
	values []T
	docs   *roaring.Bitmap
}

func (c *singleColumn[T]) Reader() fielddata.Values[T] {
	return &singleReader[T]{col: c}
}

func (c *singleColumn[T]) Docs() *roaring.Bitmap { return c.docs }

func (c *singleColumn[T]) ValueCount() int { return int(c.docs.GetCardinality()) }

func (c *singleColumn[T]) IsMultiValued() bool { return false }

// singleReader is a per-consumer accessor over a singleColumn. Only the
// re-armed iterator is mutable; everything else reads the shared column.
type singleReader[T fielddata.Width] struct {
	col *singleColumn[T]
	it  fielddata.SingleIter[T]
}

func (r *singleReader[T]) IsMultiValued() bool { return false }

func (r *singleReader[T]) HasValue(doc fielddata.DocID) bool {
	return r.col.docs.Contains(doc)
}

func (r *singleReader[T]) Value(doc fielddata.DocID) (T, error) {
	if !r.HasValue(doc) {
		var zero T
		return zero, errNoValue(doc)
	}
	return r.col.values[doc], nil
}

func (r *singleReader[T]) ValueOr(doc fielddata.DocID, missing T) T {
	if !r.HasValue(doc) {
		return missing
	}
	return r.col.values[doc]
}

func (r *singleReader[T]) DocValues(doc fielddata.DocID) []T {
	if !r.HasValue(doc) {
		return nil
	}
	return r.col.values[doc : doc+1]
}

func (r *singleReader[T]) Iter(doc fielddata.DocID) fielddata.Iter[T] {
	if !r.HasValue(doc) {
		return fielddata.EmptyIter[T]()
	}
	return r.it.Reset(r.col.values[doc])
}

func (r *singleReader[T]) ForEachValue(doc fielddata.DocID, proc fielddata.ValueProc[T]) {
	if !r.HasValue(doc) {
		proc.OnMissing(doc)
		return
	}
	proc.OnValue(doc, r.col.values[doc])
}
