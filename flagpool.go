package poolparty

import (
	"iter"

	"github.com/pathway31/pool-party/bitvec"
)

// FlagPool tracks per-slot allocation state with two flag vectors that are
// always complementary: alloc[id] marks a slot occupied, free[id] marks it
// reusable. Finding a free slot is delegated to the flag vector, so the
// pool's behavior under load is decided by the strategy passed at
// construction time.
type FlagPool[T any] struct {
	alloc    bitvec.FlagVector // true while the slot holds a live item
	free     bitvec.FlagVector // true while the slot is reusable
	items    []T
	numItems int
	opts     Options
}

// NewFlagPool creates a pool whose allocation index uses the flag-vector
// strategy produced by factory.
func NewFlagPool[T any](factory bitvec.Factory, optFns ...func(o *Options)) *FlagPool[T] {
	opts := applyOptions(optFns)
	n := opts.InitialCapacity

	return &FlagPool[T]{
		alloc: factory(n, false),
		free:  factory(n, true),
		items: make([]T, n),
		opts:  opts,
	}
}

// Len returns the number of live items.
func (p *FlagPool[T]) Len() int {
	return p.numItems
}

// Cap returns the slot capacity.
func (p *FlagPool[T]) Cap() int {
	return p.alloc.Len()
}

// Get returns the item stored under id. It panics if id is not currently
// allocated.
func (p *FlagPool[T]) Get(id int) T {
	return *p.Ref(id)
}

// Set replaces the item stored under id. It panics if id is not currently
// allocated.
func (p *FlagPool[T]) Set(id int, item T) {
	*p.Ref(id) = item
}

// Ref returns a pointer to the item stored under id for in-place
// mutation. The pointer stays valid until the next Allocate that grows the
// pool. It panics if id is not currently allocated.
func (p *FlagPool[T]) Ref(id int) *T {
	if id < 0 || id >= p.alloc.Len() || !p.alloc.Get(id) {
		panic("poolparty: id is not allocated")
	}
	return &p.items[id]
}

// Allocate stores item and returns its id, growing the pool if no free
// slot remains.
func (p *FlagPool[T]) Allocate(item T) int {
	p.growIfFull()

	id, ok := p.free.FindTrue()
	if !ok {
		panic("poolparty: no free slot after growth")
	}
	if p.alloc.Get(id) {
		panic("poolparty: free slot is marked allocated")
	}

	p.alloc.Set(id, true)
	p.free.Set(id, false)
	p.items[id] = item
	p.numItems++

	return id
}

// Deallocate drops the item stored under id and makes the id reusable. It
// panics if id is not currently allocated.
func (p *FlagPool[T]) Deallocate(id int) {
	if id < 0 || id >= p.alloc.Len() || !p.alloc.Get(id) {
		panic("poolparty: id is not allocated")
	}
	if p.free.Get(id) {
		panic("poolparty: allocated slot is marked free")
	}

	p.alloc.Set(id, false)
	p.free.Set(id, true)

	var zero T
	p.items[id] = zero // release the stored item
	p.numItems--
}

// Items returns a lazy sequence over the live items in ascending id
// order. Mutating the pool while a walk is in progress is undefined
// behavior; a fresh range after mutation is always safe.
func (p *FlagPool[T]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for id := range p.alloc.TrueBits() {
			if !yield(id, p.items[id]) {
				return
			}
		}
	}
}

func (p *FlagPool[T]) growIfFull() {
	if p.numItems < p.alloc.Len() {
		return
	}

	oldCap := p.alloc.Len()
	newCap := grownCapacity(oldCap, p.opts.GrowthFactor)
	added := newCap - oldCap

	p.alloc.Add(added, false)
	p.free.Add(added, true)
	p.items = append(p.items, make([]T, added)...)

	p.opts.Logger.LogGrow(oldCap, newCap)
}
