package inlined

import (
	"math/bits"

	"github.com/g-m-twostay/inlinedtable/internal/bucket"
	"github.com/g-m-twostay/inlinedtable/internal/obs"
)

// slot holds one user entry. The key, when equal to the configured empty
// or deleted sentinel, marks the slot as never-occupied or tombstoned
// respectively (spec.md §3 "Bucket (IT)").
type slot[K comparable, V any] struct {
	key   K
	value V
}

// outcome is the result of a placement attempt (spec.md §4.2 insert).
type outcome int

const (
	keyFound outcome = iota
	emptySlot
	arrayFull
)

// table is the probe/placement engine (C4·IT) plus the storage it probes
// against (C1). Map (in map.go) is the façade that wraps it with rehash-
// on-overflow and iterator support.
type table[K comparable, V any] struct {
	cfg       config[K, V]
	storage   *bucket.Storage[slot[K, V]]
	size      int
	freeSlots int
	inlineN   int
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// newTable allocates a table of at least capacityHint/maxLoadFactor logical
// capacity (rounded up to a power of two, never below inlineN), filled with
// the empty sentinel.
func newTable[K comparable, V any](cfg config[K, V], inlineN int) *table[K, V] {
	cap0 := nextPow2(int(float64(cfg.capacityHint) / cfg.maxLoadFactor))
	if cap0 < inlineN {
		cap0 = inlineN
	}
	if cap0 < 1 {
		cap0 = 1
	}
	t := &table[K, V]{cfg: cfg, inlineN: inlineN}
	t.storage = bucket.New(cap0, inlineN, slot[K, V]{key: cfg.emptyKey})
	t.freeSlots = int(float64(t.storage.Cap()) * cfg.maxLoadFactor)
	return t
}

func (t *table[K, V]) capacity() int { return t.storage.Cap() }
func (t *table[K, V]) mask() int     { return t.capacity() - 1 }

func (t *table[K, V]) isEmptyKey(k K) bool   { return t.cfg.equal(k, t.cfg.emptyKey) }
func (t *table[K, V]) isDeletedKey(k K) bool { return t.cfg.hasDeletedKey && t.cfg.equal(k, t.cfg.deletedKey) }

// live reports whether the slot at i holds an entry that has not been
// erased (spec.md §4.5 "nextLive").
func (t *table[K, V]) live(i int) bool {
	k := t.storage.At(i).key
	return !t.isEmptyKey(k) && !t.isDeletedKey(k)
}

// nextLive returns the smallest i >= from that is live, or capacity() if
// none remain (the iterator's end sentinel, spec.md §4.5).
func (t *table[K, V]) nextLive(from int) int {
	cap := t.capacity()
	for i := from; i < cap; i++ {
		if t.live(i) {
			return i
		}
	}
	return cap
}

// find implements spec.md §4.2's lookup probe sequence: quadratic probing,
// traversing tombstones as occupied, stopping at the empty sentinel or
// after capacity()+1 steps.
func (t *table[K, V]) find(k K) (int, bool) {
	mask := t.mask()
	i := int(t.cfg.hash(k)) & mask
	for r := 1; ; r++ {
		cur := t.storage.At(i).key
		if t.cfg.equal(cur, k) {
			return i, true
		}
		if t.isEmptyKey(cur) {
			return -1, false
		}
		if r > t.capacity() {
			return -1, false
		}
		i = (i + r) & mask
	}
}

// insert implements spec.md §4.2's insert probe: remembers the first
// tombstone seen, claims it on an empty-slot miss in preference to
// consuming freeSlots budget. A claimed slot has k written into it; the
// caller stores the value.
func (t *table[K, V]) insert(k K) (int, outcome) {
	mask := t.mask()
	i := int(t.cfg.hash(k)) & mask
	tombstone := -1
	for r := 1; ; r++ {
		cur := t.storage.At(i).key
		switch {
		case t.cfg.equal(cur, k):
			return i, keyFound
		case t.isDeletedKey(cur):
			if tombstone < 0 {
				tombstone = i
			}
		case t.isEmptyKey(cur):
			if tombstone >= 0 {
				t.storage.At(tombstone).key = k
				t.size++
				return tombstone, emptySlot
			}
			if t.freeSlots > 0 {
				t.storage.At(i).key = k
				t.freeSlots--
				t.size++
				return i, emptySlot
			}
			return -1, arrayFull
		}
		if r > t.capacity() {
			return -1, arrayFull
		}
		i = (i + r) & mask
	}
}

// erase overwrites the key at i with the deleted sentinel. Panics if no
// deleted key was configured, per spec.md §4.7.
func (t *table[K, V]) erase(i int) {
	obs.Invariant(t.cfg.hasDeletedKey, "inlined: Erase called without WithDeletedKey configured")
	var zero V
	s := t.storage.At(i)
	s.key = t.cfg.deletedKey
	s.value = zero
	t.size--
}

// desiredCapacity implements spec.md §4.4's rehash sizing rule: the
// smallest power of two that is at least twice the current capacity and
// greater than (size+1)/maxLoadFactor. rehash raises it to inlineN.
func (t *table[K, V]) desiredCapacity() int {
	want := int(float64(t.size+1)/t.cfg.maxLoadFactor) + 1
	if want < t.capacity()*2 {
		want = t.capacity() * 2
	}
	return nextPow2(want)
}

// rehash builds a fresh table of newCapacity, reinserts every live entry
// (discarding tombstones), and returns it. The caller (Map) swaps it in.
func (t *table[K, V]) rehash(newCapacity int) *table[K, V] {
	if newCapacity < t.inlineN {
		newCapacity = t.inlineN
	}
	nt := &table[K, V]{cfg: t.cfg, inlineN: t.inlineN}
	nt.storage = bucket.New(newCapacity, t.inlineN, slot[K, V]{key: t.cfg.emptyKey})
	nt.freeSlots = int(float64(newCapacity) * t.cfg.maxLoadFactor)

	cap := t.capacity()
	for i := 0; i < cap; i++ {
		if !t.live(i) {
			continue
		}
		s := t.storage.At(i)
		idx, oc := nt.insert(s.key)
		obs.Invariant(oc == emptySlot, "inlined: duplicate key detected while rehashing")
		dst := nt.storage.At(idx)
		dst.key = s.key
		dst.value = s.value
	}
	obs.Invariant(nt.size == t.size, "inlined: rehash lost or duplicated entries: had %d, got %d", t.size, nt.size)
	return nt
}
