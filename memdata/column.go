package memdata

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/fielddata"
)

// Column is an immutable in-memory field-data column.
type Column[T fielddata.Width] interface {
	// Reader returns a fresh accessor over the column with its own
	// iteration scratch state. The column is shareable; readers are not.
	// Construct one reader per concurrent consumer.
	Reader() fielddata.Values[T]

	// Docs returns the set of documents with at least one value, as used
	// by existence checks. The bitmap is shared with the column and must
	// be treated as read-only.
	Docs() *roaring.Bitmap

	// ValueCount returns the total number of stored values.
	ValueCount() int

	// IsMultiValued reports whether any document carries more than one value.
	IsMultiValued() bool
}

func errNoValue(doc fielddata.DocID) error {
	return fmt.Errorf("%w: document %d has no value", fielddata.ErrIllegalAccess, doc)
}
