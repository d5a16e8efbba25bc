package hopscotch

import "math/bits"

// H is the hop distance: the bounded neighborhood window every live entry
// must fall within relative to its home bucket. 27 is chosen so that the
// leaf bitmap (width H) and the origin field (5 bits, log2(H+1) rounded
// up) pack into a single 32-bit word (spec.md §3).
const H = 27

// hopWindow bounds the initial linear scan for any empty slot during
// insert before giving up and requesting growth (spec.md §4.3).
const hopWindow = 128

// maxGrowthRetries bounds the number of grow-and-retry cycles insert will
// attempt before aborting as a pathological-hash diagnostic (spec.md §4.7,
// "bounded number of growth retries (>= 4) before abort").
const maxGrowthRetries = 4

// meta packs a bucket's hopscotch metadata into one 32-bit word: the low
// 5 bits are origin (0 = empty, k>=1 = live with home k-1 buckets back),
// the high 27 bits are leafMask, a bitmap where bit d is set iff the
// entry currently in bucket (B+d) mod capacity has this bucket as home
// (spec.md §3).
type meta uint32

const originBits = 5
const originMask meta = (1 << originBits) - 1

func packMeta(origin int, leaf uint32) meta {
	return meta(origin)&originMask | meta(leaf)<<originBits
}

func (m meta) origin() int      { return int(m & originMask) }
func (m meta) live() bool       { return m.origin() > 0 }
func (m meta) leafMask() uint32 { return uint32(m >> originBits) }

func (m *meta) setOrigin(k int) {
	*m = (*m &^ originMask) | meta(k)&originMask
}

func (m *meta) setLeafBit(d int) {
	*m |= meta(uint32(1)<<uint(d)) << originBits
}

func (m *meta) clearLeafBit(d int) {
	*m &^= meta(uint32(1)<<uint(d)) << originBits
}

// lowestLeaf returns the smallest set bit of leafMask and whether one
// exists. Spec.md §9 resolves the "FindCloserFreeBucket" ambiguity by
// selecting the lowest set bit, which this mirrors for every leafMask
// scan (both Find and the insert swap-back loop).
func (m meta) lowestLeaf() (int, bool) {
	lm := m.leafMask()
	if lm == 0 {
		return 0, false
	}
	return bits.TrailingZeros32(lm), true
}
