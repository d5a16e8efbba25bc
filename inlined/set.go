package inlined

import "github.com/g-m-twostay/inlinedtable/internal/xhash"

// Set is the user-facing set wrapper: a one-field pass-through over a Map
// whose value type is struct{} and whose key-extractor is identity
// (spec.md §1, "out of scope" collaborator, minimally implemented here
// since spec.md's scenario S2 exercises it directly).
type Set[E comparable] struct {
	m *Map[E, struct{}]
}

// NewSet constructs a Set with InlineCapacity inline buckets.
func NewSet[E comparable](hash xhash.Func[E], emptyKey E, opts ...Option[E, struct{}]) *Set[E] {
	return &Set[E]{m: New(hash, emptyKey, opts...)}
}

// NewBareSet constructs a Set with zero inline buckets.
func NewBareSet[E comparable](hash xhash.Func[E], emptyKey E, opts ...Option[E, struct{}]) *Set[E] {
	return &Set[E]{m: NewBare(hash, emptyKey, opts...)}
}

// Insert adds e, returning false if it was already present.
func (s *Set[E]) Insert(e E) bool {
	_, added := s.m.Put(e, struct{}{})
	return added
}

// Has reports whether e is present.
func (s *Set[E]) Has(e E) bool {
	_, ok := s.m.Get(e)
	return ok
}

// Erase removes e, returning 1 if it was present and 0 otherwise.
func (s *Set[E]) Erase(e E) int { return s.m.EraseKey(e) }

// Len returns the number of elements.
func (s *Set[E]) Len() int { return s.m.Len() }

// Empty reports whether the set has no elements.
func (s *Set[E]) Empty() bool { return s.m.Empty() }

// Clear removes every element.
func (s *Set[E]) Clear() { s.m.Clear() }

// Range calls yield for every element; iteration order is unspecified.
func (s *Set[E]) Range(yield func(E) bool) {
	s.m.All(func(k E, _ struct{}) bool { return yield(k) })
}

// Union inserts every element of other into s (SPEC_FULL.md §5, ported
// from Sets/Sets.go's ExtendedSet interface).
func (s *Set[E]) Union(other *Set[E]) {
	other.Range(func(e E) bool {
		s.Insert(e)
		return true
	})
}

// Intersect removes every element of s not present in other.
func (s *Set[E]) Intersect(other *Set[E]) {
	var toDrop []E
	s.Range(func(e E) bool {
		if !other.Has(e) {
			toDrop = append(toDrop, e)
		}
		return true
	})
	for _, e := range toDrop {
		s.Erase(e)
	}
}
