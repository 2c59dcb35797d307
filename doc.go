// Package poolparty provides interchangeable slot-allocation pools:
// containers that hand out stable integer ids for stored items, reuse
// freed slots, and keep allocation, deallocation and lookup O(1)-ish.
//
// # Quick Start
//
//	pool := poolparty.NewFlagPool[string](bitvec.HierarchicalFlags)
//	id := pool.Allocate("hello")
//	fmt.Println(pool.Get(id)) // "hello"
//	pool.Deallocate(id)       // id becomes reusable
//
// # Strategies
//
// Every strategy satisfies the same Pool contract and differs only in how
// it finds a free slot:
//
//   - FlagPool: two complementary flag vectors (alloc/free) from package
//     bitvec. The flag storage is pluggable: flat packed bitset, naive
//     bool array, hierarchical bitset, roaring bitmap, bits-and-blooms
//     bitset.
//   - Simple: linear scan over an occupancy array. The baseline.
//   - FreeList: free slots threaded into an intrusive singly-linked list.
//   - Blocks: 8-slot blocks with per-block occupancy bitmaps and stacks of
//     open/active blocks.
//   - BlockList: like Blocks, but active blocks sit on a doubly-linked
//     list (array-index links) for O(1) removal.
//
// # Contract
//
// Ids are stable once issued and reused only after deallocation. Capacity
// starts at 0, grows to 1 on the first allocation and doubles on
// exhaustion; it never shrinks. Allocate cannot fail. Passing an id that
// is not currently allocated to Get, Set, Ref or Deallocate is a
// programming error and panics.
//
// Pools are single-threaded value types with no internal locking. Callers
// needing concurrent access must serialize it externally, for example with
// one mutex per pool or one pool per worker.
//
// Allocation placement hints ("allocate near this id") are deliberately
// not supported.
package poolparty
