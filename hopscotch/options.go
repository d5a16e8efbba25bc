package hopscotch

import "github.com/g-m-twostay/inlinedtable/internal/xhash"

type config[K comparable, V any] struct {
	hash         xhash.Func[K]
	equal        xhash.Equal[K]
	capacityHint int
}

// Option configures a Map at construction time.
type Option[K comparable, V any] func(*config[K, V])

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

func newConfig[K comparable, V any](hash xhash.Func[K], opts []Option[K, V]) config[K, V] {
	c := config[K, V]{hash: hash, equal: xhash.DefaultEqual[K]()}
	for _, op := range opts {
		op(&c)
	}
	return c
}
