package poolparty

import "iter"

// Simple is the baseline strategy: an occupancy array scanned linearly on
// every allocation. Easy to reason about, O(capacity) to allocate.
type Simple[T any] struct {
	items    []T
	used     []bool
	numItems int
	opts     Options
}

// NewSimple creates a linear-scan pool.
func NewSimple[T any](optFns ...func(o *Options)) *Simple[T] {
	opts := applyOptions(optFns)
	n := opts.InitialCapacity

	return &Simple[T]{
		items: make([]T, n),
		used:  make([]bool, n),
		opts:  opts,
	}
}

// Len returns the number of live items.
func (p *Simple[T]) Len() int {
	return p.numItems
}

// Cap returns the slot capacity.
func (p *Simple[T]) Cap() int {
	return len(p.items)
}

// Get returns the item stored under id. It panics if id is not currently
// allocated.
func (p *Simple[T]) Get(id int) T {
	return *p.Ref(id)
}

// Set replaces the item stored under id. It panics if id is not currently
// allocated.
func (p *Simple[T]) Set(id int, item T) {
	*p.Ref(id) = item
}

// Ref returns a pointer to the item stored under id. The pointer stays
// valid until the next Allocate that grows the pool. It panics if id is
// not currently allocated.
func (p *Simple[T]) Ref(id int) *T {
	if id < 0 || id >= len(p.items) || !p.used[id] {
		panic("poolparty: id is not allocated")
	}
	return &p.items[id]
}

// Allocate stores item in the first free slot and returns its id.
func (p *Simple[T]) Allocate(item T) int {
	if p.numItems == len(p.items) {
		oldCap := len(p.items)
		newCap := grownCapacity(oldCap, p.opts.GrowthFactor)
		p.items = append(p.items, make([]T, newCap-oldCap)...)
		p.used = append(p.used, make([]bool, newCap-oldCap)...)
		p.opts.Logger.LogGrow(oldCap, newCap)
	}

	for id := range p.used {
		if !p.used[id] {
			p.used[id] = true
			p.items[id] = item
			p.numItems++
			return id
		}
	}

	panic("poolparty: no free slot after growth")
}

// Deallocate drops the item stored under id. It panics if id is not
// currently allocated.
func (p *Simple[T]) Deallocate(id int) {
	if id < 0 || id >= len(p.items) || !p.used[id] {
		panic("poolparty: id is not allocated")
	}

	p.used[id] = false
	var zero T
	p.items[id] = zero
	p.numItems--
}

// Items returns a lazy sequence over the live items in ascending id
// order.
func (p *Simple[T]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for id := range p.items {
			if p.used[id] && !yield(id, p.items[id]) {
				return
			}
		}
	}
}
