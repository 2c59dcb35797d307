package poolparty

import (
	"iter"
	"math/bits"
)

const (
	flagsPerBlock = 8
	emptyBlock    = uint8(0)
	fullBlock     = ^uint8(0)
)

// Blocks groups slots into 8-slot blocks with a per-block occupancy
// bitmap. A stack of open blocks (at least one free slot) serves
// allocation; a list of active blocks (at least one live item) serves
// iteration, so walking the pool skips fully empty regions.
type Blocks[T any] struct {
	items    []T
	numItems int

	flags       []uint8 // per-block occupancy bits
	openBlocks  []int   // blocks with at least one free slot, used as a stack
	allocBlocks []int   // blocks with at least one live item
	opts        Options
}

// NewBlocks creates a block-bitmap pool. InitialCapacity is rounded up to
// a whole number of blocks.
func NewBlocks[T any](optFns ...func(o *Options)) *Blocks[T] {
	opts := applyOptions(optFns)
	p := &Blocks[T]{opts: opts}

	if n := opts.InitialCapacity; n > 0 {
		numBlocks := (n-1)/flagsPerBlock + 1
		p.items = make([]T, numBlocks*flagsPerBlock)
		p.flags = make([]uint8, numBlocks)
		for b := numBlocks - 1; b >= 0; b-- {
			p.openBlocks = append(p.openBlocks, b)
		}
	}

	return p
}

// Len returns the number of live items.
func (p *Blocks[T]) Len() int {
	return p.numItems
}

// Cap returns the slot capacity.
func (p *Blocks[T]) Cap() int {
	return len(p.items)
}

// Get returns the item stored under id. It panics if id is not currently
// allocated.
func (p *Blocks[T]) Get(id int) T {
	return *p.Ref(id)
}

// Set replaces the item stored under id. It panics if id is not currently
// allocated.
func (p *Blocks[T]) Set(id int, item T) {
	*p.Ref(id) = item
}

// Ref returns a pointer to the item stored under id. The pointer stays
// valid until the next Allocate that grows the pool. It panics if id is
// not currently allocated.
func (p *Blocks[T]) Ref(id int) *T {
	p.mustBeAllocated(id)
	return &p.items[id]
}

// Allocate stores item in the lowest free slot of the top open block.
func (p *Blocks[T]) Allocate(item T) int {
	p.growIfFull()

	block := p.openBlocks[len(p.openBlocks)-1]
	if p.flags[block] == fullBlock {
		panic("poolparty: open block is full")
	}

	local := bits.TrailingZeros8(^p.flags[block]) // first zero flag
	p.flags[block] |= 1 << local

	if p.flags[block] == fullBlock {
		p.openBlocks = p.openBlocks[:len(p.openBlocks)-1]
	}
	if bits.OnesCount8(p.flags[block]) == 1 {
		p.allocBlocks = append(p.allocBlocks, block)
	}

	id := block*flagsPerBlock + local
	p.items[id] = item
	p.numItems++

	return id
}

// Deallocate drops the item stored under id. It panics if id is not
// currently allocated.
func (p *Blocks[T]) Deallocate(id int) {
	p.mustBeAllocated(id)

	block := id / flagsPerBlock
	local := id % flagsPerBlock
	wasFull := p.flags[block] == fullBlock
	p.flags[block] &^= 1 << local

	if p.flags[block] == emptyBlock {
		for i, b := range p.allocBlocks {
			if b == block {
				p.allocBlocks = append(p.allocBlocks[:i], p.allocBlocks[i+1:]...) // O(n)
				break
			}
		}
	}
	if wasFull {
		p.openBlocks = append(p.openBlocks, block)
	}

	var zero T
	p.items[id] = zero
	p.numItems--
}

// Items returns a lazy sequence over the live items, grouped by active
// block in block-activation order rather than ascending id order.
func (p *Blocks[T]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, block := range p.allocBlocks {
			w := p.flags[block]
			base := block * flagsPerBlock
			for w != 0 {
				local := bits.TrailingZeros8(w)
				w &= w - 1
				if !yield(base+local, p.items[base+local]) {
					return
				}
			}
		}
	}
}

func (p *Blocks[T]) mustBeAllocated(id int) {
	if id < 0 || id >= len(p.items) || p.flags[id/flagsPerBlock]&(1<<(id%flagsPerBlock)) == 0 {
		panic("poolparty: id is not allocated")
	}
}

func (p *Blocks[T]) growIfFull() {
	if len(p.openBlocks) > 0 {
		return
	}

	oldBlocks := len(p.flags)
	newBlocks := 1
	if p.numItems > 0 {
		newBlocks = oldBlocks * p.opts.GrowthFactor
	}

	p.items = append(p.items, make([]T, (newBlocks-oldBlocks)*flagsPerBlock)...)
	p.flags = append(p.flags, make([]uint8, newBlocks-oldBlocks)...)
	for b := newBlocks - 1; b >= oldBlocks; b-- {
		p.openBlocks = append(p.openBlocks, b)
	}

	p.opts.Logger.LogGrow(oldBlocks*flagsPerBlock, newBlocks*flagsPerBlock)
}
