package fielddata

// WideWidth is the set of source widths the narrowing adapter accepts.
type WideWidth interface {
	~int32 | ~int64
}

// Int16From returns an int16 view over a wider-width source. Every scalar
// the source yields is truncated to 16 bits with standard two's-complement
// narrowing: low-order bits kept, no overflow signal, no rounding. Values
// outside the int16 range wrap silently; callers are responsible for
// knowing whether narrowing is safe for their field.
//
// Presence and cardinality pass through unchanged: HasValue and
// IsMultiValued delegate directly to src, and narrowing is element-wise,
// order- and count-preserving across all three consumption modes.
//
// The adapter owns a scratch buffer plus reusable iterator and callback
// wrappers, allocated here once and overwritten on each call. It is not
// safe for concurrent use: construct one adapter per concurrent consumer
// over the same (read-only, shareable) source.
func Int16From[S WideWidth](src Values[S]) Values[int16] {
	return &narrowed[S]{src: src}
}

// narrowed adapts a wide source to the int16 contract. One generic
// component covers both source widths; only the scalar truncation differs
// and the compiler instantiates that.
type narrowed[S WideWidth] struct {
	src Values[S]

	scratch []int16
	it      narrowIter[S]
	proc    narrowProc[S]
}

func (n *narrowed[S]) IsMultiValued() bool { return n.src.IsMultiValued() }

func (n *narrowed[S]) HasValue(doc DocID) bool { return n.src.HasValue(doc) }

func (n *narrowed[S]) Value(doc DocID) (int16, error) {
	v, err := n.src.Value(doc)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

func (n *narrowed[S]) ValueOr(doc DocID, missing int16) int16 {
	// Widening the default is lossless, so a missing doc round-trips it
	// back unchanged through the truncation below.
	return int16(n.src.ValueOr(doc, S(missing)))
}

func (n *narrowed[S]) DocValues(doc DocID) []int16 {
	wide := n.src.DocValues(doc)
	if len(wide) == 0 {
		return nil
	}
	if cap(n.scratch) < len(wide) {
		n.scratch = make([]int16, len(wide))
	}
	n.scratch = n.scratch[:len(wide)]
	for i, v := range wide {
		n.scratch[i] = int16(v)
	}
	return n.scratch
}

func (n *narrowed[S]) Iter(doc DocID) Iter[int16] {
	n.it.wrapped = n.src.Iter(doc)
	return &n.it
}

func (n *narrowed[S]) ForEachValue(doc DocID, proc ValueProc[int16]) {
	n.proc.proc = proc
	n.src.ForEachValue(doc, &n.proc)
	n.proc.proc = nil
}

// narrowIter truncates a wide iterator element-wise, lazily on Next.
// Re-armed by the owning adapter on each Iter call.
type narrowIter[S WideWidth] struct {
	wrapped Iter[S]
}

func (it *narrowIter[S]) HasNext() bool { return it.wrapped.HasNext() }

func (it *narrowIter[S]) Next() (int16, error) {
	v, err := it.wrapped.Next()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// narrowProc truncates each pushed value before forwarding it. OnMissing
// passes through untouched.
type narrowProc[S WideWidth] struct {
	proc ValueProc[int16]
}

func (p *narrowProc[S]) OnValue(doc DocID, v S) { p.proc.OnValue(doc, int16(v)) }

func (p *narrowProc[S]) OnMissing(doc DocID) { p.proc.OnMissing(doc) }
