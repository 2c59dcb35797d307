package poolparty

import "iter"

type freeListSlot[T any] struct {
	item T
	next int // next free slot when !used, noIndex terminated
	used bool
}

// FreeList threads the free slots into an intrusive singly-linked list
// stored inside the slot array itself, so allocation and deallocation are
// O(1) pushes and pops on that list.
type FreeList[T any] struct {
	slots    []freeListSlot[T]
	nextFree int
	numItems int
	opts     Options
}

// NewFreeList creates an intrusive free-list pool.
func NewFreeList[T any](optFns ...func(o *Options)) *FreeList[T] {
	opts := applyOptions(optFns)
	p := &FreeList[T]{nextFree: noIndex, opts: opts}

	if n := opts.InitialCapacity; n > 0 {
		p.slots = make([]freeListSlot[T], n)
		for i := range n - 1 {
			p.slots[i].next = i + 1
		}
		p.slots[n-1].next = noIndex
		p.nextFree = 0
	}

	return p
}

// Len returns the number of live items.
func (p *FreeList[T]) Len() int {
	return p.numItems
}

// Cap returns the slot capacity.
func (p *FreeList[T]) Cap() int {
	return len(p.slots)
}

// Get returns the item stored under id. It panics if id is not currently
// allocated.
func (p *FreeList[T]) Get(id int) T {
	return *p.Ref(id)
}

// Set replaces the item stored under id. It panics if id is not currently
// allocated.
func (p *FreeList[T]) Set(id int, item T) {
	*p.Ref(id) = item
}

// Ref returns a pointer to the item stored under id. The pointer stays
// valid until the next Allocate that grows the pool. It panics if id is
// not currently allocated.
func (p *FreeList[T]) Ref(id int) *T {
	if id < 0 || id >= len(p.slots) || !p.slots[id].used {
		panic("poolparty: id is not allocated")
	}
	return &p.slots[id].item
}

// Allocate pops the head of the free list and stores item there.
func (p *FreeList[T]) Allocate(item T) int {
	p.growIfFull()

	id := p.nextFree
	slot := &p.slots[id]
	if slot.used {
		panic("poolparty: free-list head is already allocated")
	}

	p.nextFree = slot.next
	slot.used = true
	slot.item = item
	p.numItems++

	return id
}

// Deallocate drops the item stored under id and pushes the slot onto the
// free list. It panics if id is not currently allocated.
func (p *FreeList[T]) Deallocate(id int) {
	if id < 0 || id >= len(p.slots) || !p.slots[id].used {
		panic("poolparty: id is not allocated")
	}

	slot := &p.slots[id]
	slot.used = false
	var zero T
	slot.item = zero
	slot.next = p.nextFree
	p.nextFree = id
	p.numItems--
}

// Items returns a lazy sequence over the live items in ascending id
// order.
func (p *FreeList[T]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for id := range p.slots {
			if p.slots[id].used && !yield(id, p.slots[id].item) {
				return
			}
		}
	}
}

func (p *FreeList[T]) growIfFull() {
	if p.nextFree != noIndex {
		return
	}

	oldCap := len(p.slots)
	newCap := grownCapacity(oldCap, p.opts.GrowthFactor)
	p.slots = append(p.slots, make([]freeListSlot[T], newCap-oldCap)...)

	for i := oldCap; i < newCap-1; i++ {
		p.slots[i].next = i + 1
	}
	p.slots[newCap-1].next = noIndex
	p.nextFree = oldCap

	p.opts.Logger.LogGrow(oldCap, newCap)
}
