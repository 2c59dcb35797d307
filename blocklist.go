package poolparty

import (
	"iter"
	"math/bits"
)

// BlockList is Blocks with the active-block list upgraded to a doubly
// linked list, so a block dropping to zero live items is unlinked in O(1)
// instead of a linear search. The links are array indexes into parallel
// prev/next slices, one entry per block, noIndex terminated.
type BlockList[T any] struct {
	items    []T
	numItems int

	flags      []uint8 // per-block occupancy bits
	openBlocks []int   // blocks with at least one free slot, used as a stack
	prev, next []int   // linked list over blocks with at least one live item
	head       int
	opts       Options
}

// NewBlockList creates a linked-block pool. InitialCapacity is rounded up
// to a whole number of blocks.
func NewBlockList[T any](optFns ...func(o *Options)) *BlockList[T] {
	opts := applyOptions(optFns)
	p := &BlockList[T]{head: noIndex, opts: opts}

	if n := opts.InitialCapacity; n > 0 {
		numBlocks := (n-1)/flagsPerBlock + 1
		p.items = make([]T, numBlocks*flagsPerBlock)
		p.flags = make([]uint8, numBlocks)
		p.prev = make([]int, numBlocks)
		p.next = make([]int, numBlocks)
		for b := numBlocks - 1; b >= 0; b-- {
			p.openBlocks = append(p.openBlocks, b)
			p.prev[b] = noIndex
			p.next[b] = noIndex
		}
	}

	return p
}

// Len returns the number of live items.
func (p *BlockList[T]) Len() int {
	return p.numItems
}

// Cap returns the slot capacity.
func (p *BlockList[T]) Cap() int {
	return len(p.items)
}

// Get returns the item stored under id. It panics if id is not currently
// allocated.
func (p *BlockList[T]) Get(id int) T {
	return *p.Ref(id)
}

// Set replaces the item stored under id. It panics if id is not currently
// allocated.
func (p *BlockList[T]) Set(id int, item T) {
	*p.Ref(id) = item
}

// Ref returns a pointer to the item stored under id. The pointer stays
// valid until the next Allocate that grows the pool. It panics if id is
// not currently allocated.
func (p *BlockList[T]) Ref(id int) *T {
	p.mustBeAllocated(id)
	return &p.items[id]
}

// Allocate stores item in the lowest free slot of the top open block.
func (p *BlockList[T]) Allocate(item T) int {
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
		p.linkFront(block)
	}

	id := block*flagsPerBlock + local
	p.items[id] = item
	p.numItems++

	return id
}

// Deallocate drops the item stored under id. It panics if id is not
// currently allocated.
func (p *BlockList[T]) Deallocate(id int) {
	p.mustBeAllocated(id)

	block := id / flagsPerBlock
	local := id % flagsPerBlock
	wasFull := p.flags[block] == fullBlock
	p.flags[block] &^= 1 << local

	if p.flags[block] == emptyBlock {
		p.unlink(block)
	}
	if wasFull {
		p.openBlocks = append(p.openBlocks, block)
	}

	var zero T
	p.items[id] = zero
	p.numItems--
}

// Items returns a lazy sequence over the live items, grouped by active
// block in list order (most recently activated block first) rather than
// ascending id order.
func (p *BlockList[T]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for block := p.head; block != noIndex; block = p.next[block] {
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

func (p *BlockList[T]) linkFront(block int) {
	p.prev[block] = noIndex
	p.next[block] = p.head
	if p.head != noIndex {
		p.prev[p.head] = block
	}
	p.head = block
}

func (p *BlockList[T]) unlink(block int) {
	if p.prev[block] != noIndex {
		p.next[p.prev[block]] = p.next[block]
	} else {
		p.head = p.next[block]
	}
	if p.next[block] != noIndex {
		p.prev[p.next[block]] = p.prev[block]
	}
	p.prev[block] = noIndex
	p.next[block] = noIndex
}

func (p *BlockList[T]) mustBeAllocated(id int) {
	if id < 0 || id >= len(p.items) || p.flags[id/flagsPerBlock]&(1<<(id%flagsPerBlock)) == 0 {
		panic("poolparty: id is not allocated")
	}
}

func (p *BlockList[T]) growIfFull() {
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
		p.prev = append(p.prev, noIndex)
		p.next = append(p.next, noIndex)
	}

	p.opts.Logger.LogGrow(oldBlocks*flagsPerBlock, newBlocks*flagsPerBlock)
}
