// Package memdata provides immutable in-memory field-data columns behind
// the fielddata access contracts.
//
// A Column holds one field's values for every document of a segment,
// fully resident in memory. Two representations exist:
//
//   - single-valued: a dense value array indexed by document plus a
//     roaring presence bitmap
//   - multi-valued: a flat value array plus per-document offsets
//
// Columns are built once, in ascending document order, and never mutated
// afterwards; they are safe for concurrent reads. Per-consumer accessor
// state (re-armed iterators, value views) lives in readers obtained from
// Column.Reader, one per consumer.
package memdata
