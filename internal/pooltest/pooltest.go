package pooltest

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// Item is the payload type the harness stores in pools.
type Item = int

// Pool is the contract a strategy must satisfy to be run through the
// harness. Every pool in the root package matches it structurally.
type Pool interface {
	Len() int
	Get(id int) Item
	Set(id int, item Item)
	Allocate(item Item) int
	Deallocate(id int)
	Items() iter.Seq2[int, Item]
}

// Factory constructs fresh pools of one strategy for the harness.
type Factory struct {
	New          func() Pool
	WithCapacity func(n int) Pool
}

// InvalidGetEmpty asserts that Get on an empty pool panics.
func InvalidGetEmpty(t *testing.T, f Factory) {
	t.Helper()

	pool := f.New()
	require.Panics(t, func() { pool.Get(3) })
}

// InvalidGetAfterDeallocate asserts that Get on a just-deallocated id of a
// non-empty pool panics.
func InvalidGetAfterDeallocate(t *testing.T, f Factory) {
	t.Helper()

	pool := f.New()
	ids := make([]int, 0, 128)
	for range 128 {
		ids = append(ids, pool.Allocate(0))
	}

	pool.Deallocate(ids[0])
	require.Panics(t, func() { pool.Get(ids[0]) })
}

// OneItem runs the single-item round trip: allocate, observe, deallocate,
// observe.
func OneItem(t *testing.T, f Factory) {
	t.Helper()

	pool := f.New()

	id := pool.Allocate(72)
	require.Equal(t, 1, pool.Len())
	require.Equal(t, 72, pool.Get(id))
	require.Equal(t, []Item{72}, collect(pool))

	pool.Deallocate(id)
	require.Equal(t, 0, pool.Len())
	require.Empty(t, collect(pool))
}

// ManyItems allocates 3827 sequential integers, deallocates every id where
// (id/2)%3 == 0, and verifies the survivors one by one and in bulk.
func ManyItems(t *testing.T, f Factory) {
	t.Helper()

	pool := f.New()
	recorded := make(map[int]Item)
	for i := range 3827 {
		recorded[pool.Allocate(i)] = i
	}

	for _, id := range slices.Sorted(maps.Keys(recorded)) {
		if (id/2)%3 == 0 {
			pool.Deallocate(id)
			delete(recorded, id)
		}
	}

	require.Equal(t, len(recorded), pool.Len())
	for id, want := range recorded {
		require.Equal(t, want, pool.Get(id))
	}

	poolItems := collect(pool)
	wantItems := slices.Collect(maps.Values(recorded))
	slices.Sort(poolItems)
	slices.Sort(wantItems)
	require.Equal(t, wantItems, poolItems)
}

func collect(p Pool) []Item {
	var out []Item
	for _, item := range p.Items() {
		out = append(out, item)
	}
	return out
}
