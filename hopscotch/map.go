package hopscotch

import "github.com/g-m-twostay/inlinedtable/internal/xhash"

// Map is the container façade (C7) over the HopscotchTable engine. A Map
// is not safe for concurrent use (spec.md §5).
type Map[K comparable, V any] struct {
	t *table[K, V]
}

// New constructs a Map with InlineCapacity inline buckets. hash is
// required; no sentinel key is needed since liveness is tracked by
// metadata, not by key value (spec.md §3).
func New[K comparable, V any](hash xhash.Func[K], opts ...Option[K, V]) *Map[K, V] {
	cfg := newConfig(hash, opts)
	return &Map[K, V]{t: newTable(cfg, smallInlineN)}
}

// NewBare constructs a Map with zero inline buckets (spec.md's "N may be
// 0"): every entry lives in the heap-allocated outline region.
func NewBare[K comparable, V any](hash xhash.Func[K], opts ...Option[K, V]) *Map[K, V] {
	cfg := newConfig(hash, opts)
	return &Map[K, V]{t: newTable(cfg, 0)}
}

const smallInlineN = 8 // == bucket.InlineCapacity

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.t.size }

// Empty reports whether the map has no live entries.
func (m *Map[K, V]) Empty() bool { return m.t.size == 0 }

// Cap returns the total bucket capacity.
func (m *Map[K, V]) Cap() int { return m.t.capacity() }

// Clear removes every entry and resets capacity to what a new Map with the
// same options starts with.
func (m *Map[K, V]) Clear() {
	m.t = newTable(m.t.cfg, m.t.inlineN)
}

// Find returns an iterator to key's entry, or End() if absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	if i, ok := m.t.find(key); ok {
		return m.t.at(i)
	}
	return m.t.end()
}

// Get is the common-case helper built atop Find.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.t.find(key); ok {
		return m.t.storage.At(i).value, true
	}
	var zero V
	return zero, false
}

// End returns the reserved end-of-iteration sentinel.
func (m *Map[K, V]) End() Iterator[K, V] { return m.t.end() }

// Begin returns an iterator to the first live entry, or End() if empty.
func (m *Map[K, V]) Begin() Iterator[K, V] { return m.t.begin() }

// At returns a mutable pointer to key's value, inserting a zero value
// first if key is absent. The returned pointer is invalidated by any
// later Put that triggers a rehash.
func (m *Map[K, V]) At(key K) *V {
	if i, ok := m.t.find(key); ok {
		return &m.t.storage.At(i).value
	}
	var zero V
	idx := m.insert(key, zero)
	return &m.t.storage.At(idx).value
}

// Put inserts key/value, overwriting the existing value if key is
// already present. The returned bool is false when key already existed.
func (m *Map[K, V]) Put(key K, value V) (Iterator[K, V], bool) {
	if i, ok := m.t.find(key); ok {
		m.t.storage.At(i).value = value
		return m.t.at(i), false
	}
	idx := m.insert(key, value)
	return m.t.at(idx), true
}

// insert places a key known to be absent, growing (bounded by
// maxGrowthRetries per spec.md §4.7) until placement succeeds.
func (m *Map[K, V]) insert(key K, value V) int {
	for attempt := 0; ; attempt++ {
		idx, oc := m.t.insert(key, value)
		if oc == placed {
			return idx
		}
		if attempt >= maxGrowthRetries {
			panic("hopscotch: insert failed after growth retries; hash function is likely degenerate")
		}
		m.t = m.t.rehash(m.t.capacity() * 2)
	}
}

// EraseKey removes key if present, returning 1 if it was present and 0
// otherwise.
func (m *Map[K, V]) EraseKey(key K) int {
	i, ok := m.t.find(key)
	if !ok {
		return 0
	}
	m.t.erase(i)
	return 1
}

// EraseIter removes the entry it refers to and returns an iterator to
// the next live entry. it must be valid.
func (m *Map[K, V]) EraseIter(it Iterator[K, V]) Iterator[K, V] {
	m.t.erase(it.idx)
	return m.t.at(m.t.nextLive(it.idx + 1))
}

// All calls yield for every live (key, value) pair. Iteration order is
// unspecified and not stable across mutation.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	for it := m.Begin(); it.Valid(); it.Next() {
		if !yield(it.Key(), *it.Value()) {
			return
		}
	}
}

// Reserve eagerly grows the table so it can hold n entries without an
// intervening rehash (SPEC_FULL.md §5).
func (m *Map[K, V]) Reserve(n int) {
	want := nextPow2(n)
	if want > m.t.capacity() {
		m.t = m.t.rehash(want)
	}
}

// Swap exchanges the entire contents of m and other in O(1) (SPEC_FULL.md
// §5).
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.t, other.t = other.t, m.t
}

// Clone returns an independent deep copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	nt := &table[K, V]{cfg: m.t.cfg, size: m.t.size, inlineN: m.t.inlineN}
	nt.storage = m.t.storage.Clone()
	return &Map[K, V]{t: nt}
}
