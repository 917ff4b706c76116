// Package fielddata provides uniform, allocation-conscious access to
// per-document numeric field values inside a search index segment.
//
// Field data holds one field's values in a form optimized for random
// per-document access, as used by sorting, aggregations and script-style
// scoring (as opposed to the per-term layout used for matching). Values of
// different physical widths are stored by the column layer, but consumers
// want one narrow contract: given a document ID, is there a value, what is
// it, and what are all of them.
//
// The Values interface is that contract, generic over the element width.
// Three redundant consumption modes cover the common caller shapes, with
// identical ordering and content guarantees:
//
//	vals := v.DocValues(doc)        // bulk snapshot
//	it := v.Iter(doc)               // pull iterator
//	v.ForEachValue(doc, proc)       // push callback
//
// Int16From adapts an int32- or int64-valued source to the int16 contract
// by silent two's-complement truncation, reusing scratch state so the
// per-document hot path stays allocation-free.
//
// # Concurrency
//
// Accessors own mutable scratch state (buffers, re-armed iterators) and
// are single-consumer. The underlying column data is immutable and
// shareable; give each concurrent consumer its own accessor over it.
package fielddata
