package poolparty

import "iter"

// Compile-time checks to ensure every strategy satisfies Pool.
var _ Pool[int] = (*FlagPool[int])(nil)
var _ Pool[int] = (*Simple[int])(nil)
var _ Pool[int] = (*FreeList[int])(nil)
var _ Pool[int] = (*Blocks[int])(nil)
var _ Pool[int] = (*BlockList[int])(nil)

// Pool is the capability contract shared by every slot-allocation
// strategy.
type Pool[T any] interface {
	// Len returns the number of live items, not the capacity.
	Len() int

	// Get returns the item stored under id. It panics if id is not
	// currently allocated.
	Get(id int) T

	// Set replaces the item stored under id. It panics if id is not
	// currently allocated.
	Set(id int, item T)

	// Allocate stores item and returns its id, growing the pool if no
	// free slot remains. It never fails.
	Allocate(item T) int

	// Deallocate drops the item stored under id and makes the id
	// reusable. It panics if id is not currently allocated.
	Deallocate(id int)

	// Items returns a lazy sequence over the live items. Mutating the
	// pool while a walk is in progress is undefined behavior; a fresh
	// range after mutation is always safe.
	Items() iter.Seq2[int, T]
}

// noIndex terminates intrusive index chains.
const noIndex = -1

// grownCapacity returns the capacity after one growth step: 0 becomes 1,
// anything else is multiplied by factor.
func grownCapacity(current, factor int) int {
	if current == 0 {
		return 1
	}
	return current * factor
}
