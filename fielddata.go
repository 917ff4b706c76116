package fielddata

// DocID is a dense, segment-local document identifier.
// It is passed through unchanged: this package never allocates, validates
// or interprets document IDs beyond using them as indices.
type DocID = uint32

// Width is the set of element widths a field column can expose.
type Width interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Values is the uniform read contract for the per-document values of one
// field, already resident in memory. Every operation is a bounded,
// synchronous, CPU-only transformation; there is no I/O and no blocking.
//
// Implementations are free to hand out views and iterators backed by
// scratch state they own, overwritten on the next call. A Values is
// therefore single-consumer unless documented otherwise; concurrent
// consumers each need their own instance over the shared underlying data.
type Values[T Width] interface {
	// IsMultiValued reports whether any document in this context may carry
	// more than one value. Constant for the lifetime of the provider.
	IsMultiValued() bool

	// HasValue reports whether doc has at least one value. No side effects.
	HasValue(doc DocID) bool

	// Value returns a value for doc (the first, for multi-valued fields).
	// It returns an error wrapping ErrIllegalAccess if doc has no value;
	// callers check HasValue first or use ValueOr instead.
	Value(doc DocID) (T, error)

	// ValueOr is Value with missing substituted when doc has no value.
	// The substituted default is indistinguishable from a stored value of
	// the same bit pattern; use HasValue if that distinction matters.
	ValueOr(doc DocID, missing T) T

	// DocValues returns all values for doc in provider order, or an empty
	// view when it has none. The returned slice may borrow a buffer owned
	// by the provider: it is valid only until the next DocValues call on
	// the same provider and must not be retained or mutated.
	DocValues(doc DocID) []T

	// Iter returns a lazy, finite, forward-only iterator over doc's
	// values. The iterator may be a reusable object owned by the provider
	// and re-armed on each call; request a new one instead of rewinding.
	Iter(doc DocID) Iter[T]

	// ForEachValue pushes every value for doc to proc.OnValue in provider
	// order, or invokes proc.OnMissing exactly once when doc has none.
	// Never both for the same call.
	ForEachValue(doc DocID, proc ValueProc[T])
}

// Iter is a pull-style sequence over one document's values.
type Iter[T Width] interface {
	// HasNext reports whether another value is available.
	HasNext() bool

	// Next returns the next value. Calling Next after exhaustion returns
	// an error wrapping ErrIllegalAccess.
	Next() (T, error)
}

// ValueProc receives one document's values, push style.
type ValueProc[T Width] interface {
	// OnValue is invoked once per value, in provider order.
	OnValue(doc DocID, v T)

	// OnMissing is invoked exactly once when the document has no value.
	OnMissing(doc DocID)
}
