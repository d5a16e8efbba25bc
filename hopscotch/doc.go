// Package hopscotch implements HopscotchTable: an open-addressed hash map
// and set using hopscotch hashing. Each home bucket tracks a bitmap of up
// to H occupied neighbor buckets and each bucket remembers the offset back
// to its home, so no sentinel key values are required (unlike the sibling
// inlined package).
//
// As with inlined, a small fixed-size inline region is embedded directly
// in the Map value and overflow spills to a heap-allocated outline
// region (internal/bucket).
//
// A Map is not safe for concurrent use.
package hopscotch
