package memdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fielddata"
)

func drain[T fielddata.Width](t *testing.T, it fielddata.Iter[T]) []T {
	t.Helper()
	var out []T
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

// countingProc tracks callback invocations.
type countingProc[T fielddata.Width] struct {
	values  []T
	missing int
}

func (p *countingProc[T]) OnValue(_ fielddata.DocID, v T) { p.values = append(p.values, v) }

func (p *countingProc[T]) OnMissing(fielddata.DocID) { p.missing++ }

func TestBuilder_SingleRepresentation(t *testing.T) {
	b := NewBuilder[int64]()
	require.NoError(t, b.Add(0, 100))
	require.NoError(t, b.Add(2, -5))
	require.NoError(t, b.Add(7, 300000))

	col := b.Build()
	assert.False(t, col.IsMultiValued())
	assert.Equal(t, 3, col.ValueCount())
	assert.EqualValues(t, 3, col.Docs().GetCardinality())

	r := col.Reader()
	assert.False(t, r.IsMultiValued())

	v, err := r.Value(0)
	require.NoError(t, err)
	assert.Equal(t, int64(100), v)

	v, err = r.Value(7)
	require.NoError(t, err)
	assert.Equal(t, int64(300000), v)

	// Gap and out-of-range docs have no value.
	for _, doc := range []fielddata.DocID{1, 3, 6, 8, 100} {
		assert.False(t, r.HasValue(doc), "doc %d", doc)
		assert.Empty(t, r.DocValues(doc))
		_, err := r.Value(doc)
		assert.ErrorIs(t, err, fielddata.ErrIllegalAccess)
	}
}

func TestBuilder_MultiRepresentation(t *testing.T) {
	b := NewBuilder[int32]()
	require.NoError(t, b.Add(1, 10, 20, 30))
	require.NoError(t, b.Add(3, 40))

	col := b.Build()
	assert.True(t, col.IsMultiValued())
	assert.Equal(t, 4, col.ValueCount())
	assert.EqualValues(t, 2, col.Docs().GetCardinality())

	r := col.Reader()
	assert.True(t, r.IsMultiValued())
	assert.Equal(t, []int32{10, 20, 30}, r.DocValues(1))
	assert.Equal(t, []int32{40}, r.DocValues(3))

	// Value returns the first stored value.
	v, err := r.Value(1)
	require.NoError(t, err)
	assert.Equal(t, int32(10), v)

	assert.False(t, r.HasValue(0))
	assert.False(t, r.HasValue(2))
	assert.False(t, r.HasValue(4))
}

func TestBuilder_OutOfOrder(t *testing.T) {
	b := NewBuilder[int64]()
	require.NoError(t, b.Add(5, 1))

	assert.Error(t, b.Add(5, 2))
	assert.Error(t, b.Add(3, 2))
}

func TestBuilder_SkippedAndValuelessDocs(t *testing.T) {
	b := NewBuilder[int64]()
	require.NoError(t, b.Add(0, 1))
	require.NoError(t, b.Add(4)) // no values: same as skipping
	require.NoError(t, b.Add(6, 2))

	col := b.Build()
	r := col.Reader()

	assert.True(t, r.HasValue(0))
	assert.False(t, r.HasValue(4))
	assert.True(t, r.HasValue(6))
	assert.EqualValues(t, 2, col.Docs().GetCardinality())
}

func TestBuilder_Empty(t *testing.T) {
	col := NewBuilder[int32]().Build()

	assert.False(t, col.IsMultiValued())
	assert.Equal(t, 0, col.ValueCount())
	assert.True(t, col.Docs().IsEmpty())

	r := col.Reader()
	assert.False(t, r.HasValue(0))
	assert.Empty(t, r.DocValues(0))
	assert.False(t, r.Iter(0).HasNext())
	assert.Equal(t, int32(7), r.ValueOr(0, 7))
}

func TestReader_ViewsConsistent(t *testing.T) {
	b := NewBuilder[int64]()
	require.NoError(t, b.Add(2, 7, -9, 100000))
	col := b.Build()

	r := col.Reader()
	want := []int64{7, -9, 100000}

	assert.Equal(t, want, r.DocValues(2))
	assert.Equal(t, want, drain[int64](t, r.Iter(2)))

	var proc countingProc[int64]
	r.ForEachValue(2, &proc)
	assert.Equal(t, want, proc.values)
	assert.Zero(t, proc.missing)

	var missProc countingProc[int64]
	r.ForEachValue(1, &missProc)
	assert.Empty(t, missProc.values)
	assert.Equal(t, 1, missProc.missing)
}

func TestReader_IterReuse(t *testing.T) {
	b := NewBuilder[int64]()
	require.NoError(t, b.Add(0, 1, 2))
	require.NoError(t, b.Add(1, 3, 4))
	col := b.Build()

	r := col.Reader()

	// The reader re-arms one iterator; requesting a new one for another
	// document invalidates the previous.
	assert.Equal(t, []int64{1, 2}, drain[int64](t, r.Iter(0)))
	assert.Equal(t, []int64{3, 4}, drain[int64](t, r.Iter(1)))

	it := r.Iter(0)
	_, err := it.Next()
	require.NoError(t, err)
	_, err = it.Next()
	require.NoError(t, err)
	_, err = it.Next()
	assert.ErrorIs(t, err, fielddata.ErrIllegalAccess)
}

func TestSingleReader_IterExhausted(t *testing.T) {
	b := NewBuilder[int32]()
	require.NoError(t, b.Add(0, 42))
	r := b.Build().Reader()

	it := r.Iter(0)
	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	_, err = it.Next()
	assert.ErrorIs(t, err, fielddata.ErrIllegalAccess)
}
