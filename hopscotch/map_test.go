package hopscotch

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/g-m-twostay/inlinedtable/internal/bitset"
	"github.com/g-m-twostay/inlinedtable/internal/xhash"
	"github.com/stretchr/testify/require"
)

func newIntMap() *Map[int, string] {
	return New[int, string](xhash.Int[int]())
}

func TestBasicPutGetErase(t *testing.T) {
	m := newIntMap()
	require.True(t, m.Empty())

	_, added := m.Put(1, "one")
	require.True(t, added)
	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", v)

	_, added = m.Put(1, "uno")
	require.False(t, added)
	v, _ = m.Get(1)
	require.Equal(t, "uno", v)

	require.Equal(t, 1, m.EraseKey(1))
	_, ok = m.Get(1)
	require.False(t, ok)
	require.Equal(t, 0, m.EraseKey(1))
}

func TestEraseIterRemovesExactlyThatEntry(t *testing.T) {
	m := newIntMap()
	for i := 0; i < 20; i++ {
		m.Put(i, fmt.Sprint(i))
	}
	it := m.Find(5)
	require.True(t, it.Valid())
	next := m.EraseIter(it)
	require.Equal(t, 19, m.Len())
	if next.Valid() {
		require.NotEqual(t, 5, next.Key())
	}
}

func TestAtInsertsZeroValue(t *testing.T) {
	m := newIntMap()
	p := m.At(7)
	require.Equal(t, "", *p)
	*p = "seven"
	v, _ := m.Get(7)
	require.Equal(t, "seven", v)
}

func TestIterationVisitsEveryLiveEntryExactlyOnce(t *testing.T) {
	m := newIntMap()
	want := map[int]string{}
	for i := 0; i < 500; i++ {
		m.Put(i, fmt.Sprint(i))
		want[i] = fmt.Sprint(i)
	}
	for i := 0; i < 500; i += 3 {
		m.EraseKey(i)
		delete(want, i)
	}

	seen := bitset.New(m.Cap())
	count := 0
	m.All(func(k int, v string) bool {
		require.Equal(t, want[k], v)
		idx, ok := m.t.find(k)
		require.True(t, ok)
		require.False(t, seen.Get(idx), "bucket %d visited twice", idx)
		seen.Set(idx)
		count++
		return true
	})
	require.Equal(t, len(want), count)
}

func TestRandomModelEquivalenceAgainstGodsHashMap(t *testing.T) {
	m := newIntMap()
	oracle := hashmap.New()
	oracleVals := map[int]string{}

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100000; i++ {
		k := rng.Intn(100)
		switch rng.Intn(3) {
		case 0:
			v := fmt.Sprint(k, "-", i)
			m.Put(k, v)
			oracle.Put(k, v)
			oracleVals[k] = v
		case 1:
			m.EraseKey(k)
			oracle.Remove(k)
			delete(oracleVals, k)
		case 2:
			v, ok := m.Get(k)
			_, oracleOk := oracleVals[k]
			require.Equal(t, oracleOk, ok)
			if ok {
				require.Equal(t, oracleVals[k], v)
			}
		}
	}
	require.Equal(t, oracle.Size(), m.Len())
	for k, v := range oracleVals {
		got, ok := m.Get(k)
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}

func TestStressInsertionTenThousandKeys(t *testing.T) {
	m := newIntMap()
	const n = 10000
	for i := 0; i < n; i++ {
		m.Put(i, fmt.Sprint(i))
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, fmt.Sprint(i), v)
	}
}

func TestReserveAvoidsShrinkingBelowHint(t *testing.T) {
	m := newIntMap()
	m.Reserve(1000)
	capAfterReserve := m.Cap()
	for i := 0; i < 400; i++ {
		m.Put(i, "x")
	}
	require.Equal(t, capAfterReserve, m.Cap())
}

func TestSwapExchangesContents(t *testing.T) {
	a := newIntMap()
	b := newIntMap()
	a.Put(1, "a1")
	b.Put(2, "b2")
	a.Swap(b)
	_, ok := a.Get(1)
	require.False(t, ok)
	v, ok := a.Get(2)
	require.True(t, ok)
	require.Equal(t, "b2", v)
	v, ok = b.Get(1)
	require.True(t, ok)
	require.Equal(t, "a1", v)
}

func TestCloneIsIndependent(t *testing.T) {
	a := newIntMap()
	a.Put(1, "one")
	b := a.Clone()
	b.Put(1, "uno")
	b.Put(2, "two")

	v, _ := a.Get(1)
	require.Equal(t, "one", v)
	_, ok := a.Get(2)
	require.False(t, ok)
}

func TestNewBareHasNoInlineRegion(t *testing.T) {
	m := NewBare[int, string](xhash.Int[int]())
	require.Equal(t, 0, m.t.inlineN)
	m.Put(1, "one")
	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", v)
}
