package fielddata

// SingleIter is a reusable Iter over exactly one value. Provider
// implementations keep one per accessor and re-arm it with Reset on each
// Iter call instead of allocating a fresh iterator per document.
//
// A SingleIter is scratch state: one consumer per accessor, and a Reset
// invalidates any outstanding use of the previous arming.
type SingleIter[T Width] struct {
	value T
	done  bool
}

// Reset re-arms the iterator with v and returns it.
func (it *SingleIter[T]) Reset(v T) *SingleIter[T] {
	it.value = v
	it.done = false
	return it
}

func (it *SingleIter[T]) HasNext() bool { return !it.done }

func (it *SingleIter[T]) Next() (T, error) {
	if it.done {
		var zero T
		return zero, errExhausted()
	}
	it.done = true
	return it.value, nil
}

// SliceIter is a reusable Iter over a slice of values, the multi-valued
// counterpart of SingleIter. Same scratch-state contract.
type SliceIter[T Width] struct {
	values []T
	idx    int
}

// Reset re-arms the iterator over values and returns it. The slice is not
// copied and must stay unchanged while the iterator is in use.
func (it *SliceIter[T]) Reset(values []T) *SliceIter[T] {
	it.values = values
	it.idx = 0
	return it
}

func (it *SliceIter[T]) HasNext() bool { return it.idx < len(it.values) }

func (it *SliceIter[T]) Next() (T, error) {
	if it.idx >= len(it.values) {
		var zero T
		return zero, errExhausted()
	}
	v := it.values[it.idx]
	it.idx++
	return v, nil
}
