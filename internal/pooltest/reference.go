package pooltest

import (
	"iter"
	"maps"
	"slices"
)

// Compile-time check to ensure the oracle satisfies the same contract as
// the strategies it judges.
var _ Pool = (*Reference)(nil)

// Reference is the associative-map oracle. Ids come from a monotonically
// increasing counter, so they are synthetic, never reused, and carry no
// relation to slot positions.
type Reference struct {
	items  map[int]Item
	nextID int
}

// NewReference creates an empty oracle.
func NewReference() *Reference {
	return &Reference{items: make(map[int]Item)}
}

// NewReferenceWithCapacity creates an oracle pre-sized for n items.
func NewReferenceWithCapacity(n int) *Reference {
	return &Reference{items: make(map[int]Item, n)}
}

// Len returns the number of live items.
func (r *Reference) Len() int {
	return len(r.items)
}

// Get returns the item stored under id. It panics if id is not currently
// allocated.
func (r *Reference) Get(id int) Item {
	item, ok := r.items[id]
	if !ok {
		panic("pooltest: id is not allocated")
	}
	return item
}

// Set replaces the item stored under id. It panics if id is not currently
// allocated.
func (r *Reference) Set(id int, item Item) {
	if _, ok := r.items[id]; !ok {
		panic("pooltest: id is not allocated")
	}
	r.items[id] = item
}

// Allocate stores item under a fresh synthetic id.
func (r *Reference) Allocate(item Item) int {
	id := r.nextID
	r.nextID++
	r.items[id] = item
	return id
}

// Deallocate drops the item stored under id. It panics if id is not
// currently allocated.
func (r *Reference) Deallocate(id int) {
	if _, ok := r.items[id]; !ok {
		panic("pooltest: id is not allocated")
	}
	delete(r.items, id)
}

// Items returns a lazy sequence over the live items in ascending id
// order.
func (r *Reference) Items() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for _, id := range slices.Sorted(maps.Keys(r.items)) {
			if !yield(id, r.items[id]) {
				return
			}
		}
	}
}
