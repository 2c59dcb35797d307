package poolparty

// PoolStats is a point-in-time snapshot of a pool's occupancy.
type PoolStats struct {
	// Live is the number of currently allocated items.
	Live int

	// Capacity is the total number of slots, allocated or free.
	Capacity int
}

// Stats returns a snapshot of the pool's occupancy.
func (p *FlagPool[T]) Stats() PoolStats {
	return PoolStats{Live: p.numItems, Capacity: p.alloc.Len()}
}

// Stats returns a snapshot of the pool's occupancy.
func (p *Simple[T]) Stats() PoolStats {
	return PoolStats{Live: p.numItems, Capacity: len(p.items)}
}

// Stats returns a snapshot of the pool's occupancy.
func (p *FreeList[T]) Stats() PoolStats {
	return PoolStats{Live: p.numItems, Capacity: len(p.slots)}
}

// BlockStats extends PoolStats with block bookkeeping.
type BlockStats struct {
	PoolStats

	// Blocks is the total number of 8-slot blocks.
	Blocks int

	// ActiveBlocks is the number of blocks holding at least one live item.
	ActiveBlocks int
}

// Stats returns a snapshot of the pool's occupancy.
func (p *Blocks[T]) Stats() BlockStats {
	return BlockStats{
		PoolStats:    PoolStats{Live: p.numItems, Capacity: len(p.items)},
		Blocks:       len(p.flags),
		ActiveBlocks: len(p.allocBlocks),
	}
}

// Stats returns a snapshot of the pool's occupancy.
func (p *BlockList[T]) Stats() BlockStats {
	active := 0
	for block := p.head; block != noIndex; block = p.next[block] {
		active++
	}
	return BlockStats{
		PoolStats:    PoolStats{Live: p.numItems, Capacity: len(p.items)},
		Blocks:       len(p.flags),
		ActiveBlocks: active,
	}
}
