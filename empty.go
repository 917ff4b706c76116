package fielddata

// Empty returns the provider for a field with no data at all. The result
// is stateless: it carries no scratch, is safe to share between any
// number of callers, and the process needs only one per width.
func Empty[T Width]() Values[T] {
	return emptyValues[T]{}
}

// EmptyIter returns an immediately-exhausted iterator. Stateless and
// shareable, like Empty.
func EmptyIter[T Width]() Iter[T] {
	return emptyIter[T]{}
}

type emptyValues[T Width] struct{}

func (emptyValues[T]) IsMultiValued() bool { return false }

func (emptyValues[T]) HasValue(DocID) bool { return false }

func (emptyValues[T]) Value(doc DocID) (T, error) {
	var zero T
	return zero, errNoValue(doc)
}

func (emptyValues[T]) ValueOr(_ DocID, missing T) T { return missing }

func (emptyValues[T]) DocValues(DocID) []T { return nil }

func (emptyValues[T]) Iter(DocID) Iter[T] { return emptyIter[T]{} }

func (emptyValues[T]) ForEachValue(doc DocID, proc ValueProc[T]) {
	proc.OnMissing(doc)
}

type emptyIter[T Width] struct{}

func (emptyIter[T]) HasNext() bool { return false }

func (emptyIter[T]) Next() (T, error) {
	var zero T
	return zero, errExhausted()
}
