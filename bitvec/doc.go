// Package bitvec provides the flag-vector subsystem backing the slot pools.
//
// A flag vector is a growable boolean-indexed vector with a pluggable
// storage strategy. Every strategy satisfies the FlagVector contract:
// point get/set, bulk append, find-a-true-flag, and lazy ascending
// enumeration of true flags.
//
// Strategies:
//
//   - BitVec: flat packed bitset over 32-bit words. O(n/32) find.
//   - BoolVec: naive []bool. Reference grade, O(n) find.
//   - Hierarchical: multi-level OR-reduction bitset. O(log n) find,
//     enumeration that skips whole empty subtrees.
//   - RoaringVec: compressed roaring bitmap.
//   - BitSetVec: bits-and-blooms packed bitset.
//
// All vectors are single-threaded value types. Capacity is monotone:
// vectors grow, never shrink. Out-of-range indexes are programming errors
// and panic.
package bitvec
