package hopscotch

import (
	"math/bits"

	"github.com/g-m-twostay/inlinedtable/internal/bucket"
	"github.com/g-m-twostay/inlinedtable/internal/obs"
)

// entry holds one user entry plus its hopscotch metadata (spec.md §3
// "Bucket (HT)"). Unlike inlined's slot, initialization state is tracked
// by md.origin(), not a sentinel key, so the zero entry is the empty
// state.
type entry[K comparable, V any] struct {
	key   K
	value V
	md    meta
}

type outcome int

const (
	placed outcome = iota
	full
)

// table is the neighborhood search / swap-back placement engine (C4·HT)
// plus the storage it places into (C1). Map (in map.go) wraps it with
// growth-retry and iterator support.
type table[K comparable, V any] struct {
	cfg     config[K, V]
	storage *bucket.Storage[entry[K, V]]
	size    int
	inlineN int
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func newTable[K comparable, V any](cfg config[K, V], inlineN int) *table[K, V] {
	cap0 := nextPow2(cfg.capacityHint)
	if cap0 < inlineN {
		cap0 = inlineN
	}
	if cap0 < 1 {
		cap0 = 1
	}
	t := &table[K, V]{cfg: cfg, inlineN: inlineN}
	t.storage = bucket.New(cap0, inlineN, entry[K, V]{})
	return t
}

func (t *table[K, V]) capacity() int { return t.storage.Cap() }
func (t *table[K, V]) mask() int     { return t.capacity() - 1 }

func (t *table[K, V]) distance(home, idx int) int {
	return (idx - home) & t.mask()
}

func (t *table[K, V]) live(i int) bool {
	return t.storage.At(i).md.live()
}

func (t *table[K, V]) nextLive(from int) int {
	cap := t.capacity()
	for i := from; i < cap; i++ {
		if t.live(i) {
			return i
		}
	}
	return cap
}

// find implements spec.md §4.3's lookup: walk the home bucket's leafMask
// in ascending bit order, comparing keys at each candidate.
func (t *table[K, V]) find(k K) (int, bool) {
	mask := t.mask()
	home := int(t.cfg.hash(k)) & mask
	lm := t.storage.At(home).md.leafMask()
	for lm != 0 {
		d := bits.TrailingZeros32(lm)
		idx := (home + d) & mask
		if t.cfg.equal(t.storage.At(idx).key, k) {
			return idx, true
		}
		lm &^= uint32(1) << uint(d)
	}
	return -1, false
}

// insert implements spec.md §4.3: a linear scan for the first free bucket
// within hopWindow, then repeated swap-back (lowest leaf bit first, per
// spec.md §9's resolution of the FindCloserFreeBucket ambiguity) until
// the free bucket lands within H of home. The caller must have already
// verified k is absent (Map.Put does this via find).
func (t *table[K, V]) insert(k K, v V) (int, outcome) {
	mask := t.mask()
	home := int(t.cfg.hash(k)) & mask

	f := -1
	limit := hopWindow
	if limit > t.capacity() {
		limit = t.capacity()
	}
	for step := 0; step < limit; step++ {
		idx := (home + step) & mask
		if !t.live(idx) {
			f = idx
			break
		}
	}
	if f < 0 {
		return -1, full
	}

	for t.distance(home, f) >= H {
		moved := false
		for d := H - 1; d >= 1; d-- {
			c := (f - d) & mask
			cEntry := t.storage.At(c)
			g, ok := cEntry.md.lowestLeaf()
			if !ok || g >= d {
				continue
			}
			oldIdx := (c + g) & mask
			old := t.storage.At(oldIdx)
			dst := t.storage.At(f)

			dst.key, dst.value = old.key, old.value
			dst.md.setOrigin(d + 1)
			cEntry.md.clearLeafBit(g)
			cEntry.md.setLeafBit(d)

			var zeroK K
			var zeroV V
			old.key, old.value = zeroK, zeroV
			old.md.setOrigin(0)

			f = oldIdx
			moved = true
			break
		}
		if !moved {
			return -1, full
		}
	}

	dst := t.storage.At(f)
	dst.key, dst.value = k, v
	dst.md.setOrigin(t.distance(home, f) + 1)
	t.storage.At(home).md.setLeafBit(t.distance(home, f))
	t.size++
	return f, placed
}

// erase implements spec.md §4.3's erase: clear the home's leaf bit and
// the bucket's own origin/contents.
func (t *table[K, V]) erase(i int) {
	e := t.storage.At(i)
	d := e.md.origin() - 1
	home := (i - d) & t.mask()
	t.storage.At(home).md.clearLeafBit(d)

	var zeroK K
	var zeroV V
	e.key, e.value = zeroK, zeroV
	e.md.setOrigin(0)
	t.size--
}

// rehash builds a fresh table and reinserts every live entry, doubling
// capacity further (up to maxGrowthRetries times) if a reinsertion still
// can't place — spec.md §4.7's "placement impossible after max retries:
// abort" for the rehash path.
func (t *table[K, V]) rehash(newCapacity int) *table[K, V] {
	cap := newCapacity
	if cap < t.inlineN {
		cap = t.inlineN
	}
	for attempt := 0; ; attempt++ {
		nt := &table[K, V]{cfg: t.cfg, inlineN: t.inlineN}
		nt.storage = bucket.New(cap, t.inlineN, entry[K, V]{})

		ok := true
		oldCap := t.capacity()
		for i := 0; i < oldCap; i++ {
			if !t.live(i) {
				continue
			}
			e := t.storage.At(i)
			if _, oc := nt.insert(e.key, e.value); oc != placed {
				ok = false
				break
			}
		}
		if ok {
			obs.Invariant(nt.size == t.size, "hopscotch: rehash lost or duplicated entries: had %d, got %d", t.size, nt.size)
			return nt
		}
		obs.Invariant(attempt < maxGrowthRetries, "hopscotch: placement impossible after %d growth retries (pathological hash function)", maxGrowthRetries)
		cap *= 2
	}
}
