// Package xhash provides the convenience hash functors this module's
// engines accept as a constructor argument. Both inlined and hopscotch
// require callers to supply their own hash and equality functions — the
// same stance G-M-twostay-Go-Utils/Maps/base.go documents: "It's
// recommended to use your own hash function whenever possible instead of
// just using the general hash function offered by go." These helpers cover
// the common integer/string cases, hashed with cespare/xxhash.
package xhash

import (
	"unsafe"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
)

// Func is the hash functor shape both engines accept.
type Func[K any] func(K) uint64

// Equal is the equality functor shape both engines accept.
type Equal[K any] func(a, b K) bool

// Int builds a hash functor for any integer key type by hashing its raw
// bytes with xxhash, grounded on HopMap.hash/HopMap2.hash which do exactly
// this for K constraints.Integer via xxhash.Sum64 over the key's memory.
func Int[K constraints.Integer]() Func[K] {
	return func(k K) uint64 {
		var zero K
		b := unsafe.Slice((*byte)(unsafe.Pointer(&k)), unsafe.Sizeof(zero))
		return xxhash.Sum64(b)
	}
}

// String builds a hash functor for string keys.
func String() Func[string] {
	return func(s string) uint64 {
		return xxhash.Sum64(unsafe.Slice(unsafe.StringData(s), len(s)))
	}
}

// Bytes builds a hash functor for []byte keys. Two equal-contents slices
// hash identically, matching value semantics expected of a map key.
func Bytes() Func[[]byte] {
	return func(b []byte) uint64 {
		return xxhash.Sum64(b)
	}
}

// DefaultEqual returns the built-in == comparison as an Equal functor, for
// any comparable key type.
func DefaultEqual[K comparable]() Equal[K] {
	return func(a, b K) bool { return a == b }
}
