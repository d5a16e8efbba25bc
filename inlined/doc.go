// Package inlined implements InlinedTable: an open-addressed hash map and
// set using quadratic probing over a single flat bucket array, with
// sentinel key values distinguishing empty and tombstoned slots.
//
// The table embeds a small fixed-size inline capacity region directly
// inside the Map value to avoid allocation for small tables, spilling
// overflow to a heap-allocated outline region (see internal/bucket).
//
// A Map is not safe for concurrent use.
package inlined
