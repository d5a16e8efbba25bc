package hopscotch

import (
	"testing"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/g-m-twostay/inlinedtable/internal/xhash"
	"github.com/stretchr/testify/require"
)

func newIntSet() *Set[int] {
	return NewSet[int](xhash.Int[int]())
}

func TestSetInsertHasErase(t *testing.T) {
	s := newIntSet()
	require.True(t, s.Insert(1))
	require.False(t, s.Insert(1))
	require.True(t, s.Has(1))
	require.Equal(t, 1, s.Erase(1))
	require.False(t, s.Has(1))
	require.Equal(t, 0, s.Erase(1))
}

func TestSetUnion(t *testing.T) {
	a := newIntSet()
	b := newIntSet()
	a.Insert(1)
	a.Insert(2)
	b.Insert(2)
	b.Insert(3)

	a.Union(b)
	require.Equal(t, 3, a.Len())
	for _, e := range []int{1, 2, 3} {
		require.True(t, a.Has(e))
	}
}

func TestSetIntersect(t *testing.T) {
	a := newIntSet()
	b := newIntSet()
	for _, e := range []int{1, 2, 3} {
		a.Insert(e)
	}
	for _, e := range []int{2, 3, 4} {
		b.Insert(e)
	}

	a.Intersect(b)
	require.Equal(t, 2, a.Len())
	require.True(t, a.Has(2))
	require.True(t, a.Has(3))
	require.False(t, a.Has(1))
}

func TestSetAgainstGodsHashMapOracle(t *testing.T) {
	s := newIntSet()
	oracle := hashmap.New()

	for i := 0; i < 200; i++ {
		if i%7 == 0 && i > 0 {
			s.Erase(i - 7)
			oracle.Remove(i - 7)
			continue
		}
		s.Insert(i)
		oracle.Put(i, struct{}{})
	}

	require.Equal(t, oracle.Size(), s.Len())
	for _, k := range oracle.Keys() {
		require.True(t, s.Has(k.(int)))
	}
}
