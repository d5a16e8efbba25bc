package inlined

import "github.com/g-m-twostay/inlinedtable/internal/xhash"

// defaultMaxLoadFactor is the library's chosen policy among the several the
// source snapshots disagreed on (spec.md §9 Open Questions): 0.5.
const defaultMaxLoadFactor = 0.5

type config[K comparable, V any] struct {
	hash           xhash.Func[K]
	equal          xhash.Equal[K]
	emptyKey       K
	deletedKey     K
	hasDeletedKey  bool
	maxLoadFactor  float64
	capacityHint   int
}

// Option configures a Map at construction time, mirroring the functional
// option pattern cockroachdb-swiss's options.go uses for WithHash/
// WithAllocator.
type Option[K comparable, V any] func(*config[K, V])

// WithDeletedKey supplies the tombstone sentinel. Required only if Erase
// will be called; erasing without one configured panics (spec §4.7).
func WithDeletedKey[K comparable, V any](k K) Option[K, V] {
	return func(c *config[K, V]) {
		c.deletedKey = k
		c.hasDeletedKey = true
	}
}

// WithMaxLoadFactor overrides the default max load factor of 0.5. f must
// be in (0, 1].
func WithMaxLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(c *config[K, V]) {
		if f <= 0 || f > 1 {
			panic("inlined: maxLoadFactor must be in (0, 1]")
		}
		c.maxLoadFactor = f
	}
}

// WithCapacityHint pre-sizes the table so it can hold n entries without an
// intervening rehash.
func WithCapacityHint[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) {
		c.capacityHint = n
	}
}

// WithEqual overrides the default == comparison with a custom equality
// functor.
func WithEqual[K comparable, V any](eq xhash.Equal[K]) Option[K, V] {
	return func(c *config[K, V]) {
		c.equal = eq
	}
}

func newConfig[K comparable, V any](hash xhash.Func[K], emptyKey K, opts []Option[K, V]) config[K, V] {
	c := config[K, V]{
		hash:          hash,
		equal:         xhash.DefaultEqual[K](),
		emptyKey:      emptyKey,
		maxLoadFactor: defaultMaxLoadFactor,
	}
	for _, op := range opts {
		op(&c)
	}
	return c
}
