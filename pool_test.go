package poolparty_test

import (
	"testing"

	poolparty "github.com/pathway31/pool-party"
	"github.com/pathway31/pool-party/bitvec"
	"github.com/pathway31/pool-party/internal/pooltest"
)

// flagFactory adapts a flag-vector strategy into a pool factory for the
// harness.
func flagFactory(factory bitvec.Factory) pooltest.Factory {
	return pooltest.Factory{
		New: func() pooltest.Pool {
			return poolparty.NewFlagPool[pooltest.Item](factory)
		},
		WithCapacity: func(n int) pooltest.Pool {
			return poolparty.NewFlagPool[pooltest.Item](factory, poolparty.WithInitialCapacity(n))
		},
	}
}

// strategies enumerates every pool strategy the package ships.
func strategies() map[string]pooltest.Factory {
	m := map[string]pooltest.Factory{
		"simple": {
			New: func() pooltest.Pool {
				return poolparty.NewSimple[pooltest.Item]()
			},
			WithCapacity: func(n int) pooltest.Pool {
				return poolparty.NewSimple[pooltest.Item](poolparty.WithInitialCapacity(n))
			},
		},
		"freelist": {
			New: func() pooltest.Pool {
				return poolparty.NewFreeList[pooltest.Item]()
			},
			WithCapacity: func(n int) pooltest.Pool {
				return poolparty.NewFreeList[pooltest.Item](poolparty.WithInitialCapacity(n))
			},
		},
		"blocks": {
			New: func() pooltest.Pool {
				return poolparty.NewBlocks[pooltest.Item]()
			},
			WithCapacity: func(n int) pooltest.Pool {
				return poolparty.NewBlocks[pooltest.Item](poolparty.WithInitialCapacity(n))
			},
		},
		"blocklist": {
			New: func() pooltest.Pool {
				return poolparty.NewBlockList[pooltest.Item]()
			},
			WithCapacity: func(n int) pooltest.Pool {
				return poolparty.NewBlockList[pooltest.Item](poolparty.WithInitialCapacity(n))
			},
		},
	}

	for name, factory := range map[string]bitvec.Factory{
		"flags-flat":         bitvec.FlatFlags,
		"flags-bool":         bitvec.BoolFlags,
		"flags-hierarchical": bitvec.HierarchicalFlags,
		"flags-roaring":      bitvec.RoaringFlags,
		"flags-bitset":       bitvec.BitSetFlags,
	} {
		m[name] = flagFactory(factory)
	}

	return m
}

func TestPools_Scenarios(t *testing.T) {
	scenarios := map[string]func(*testing.T, pooltest.Factory){
		"InvalidGetEmpty":           pooltest.InvalidGetEmpty,
		"InvalidGetAfterDeallocate": pooltest.InvalidGetAfterDeallocate,
		"OneItem":                   pooltest.OneItem,
		"ManyItems":                 pooltest.ManyItems,
	}

	for name, f := range strategies() {
		t.Run(name, func(t *testing.T) {
			for scenario, run := range scenarios {
				t.Run(scenario, func(t *testing.T) {
					run(t, f)
				})
			}
		})
	}
}

// Many short-lived pools: exercises construction, pre-sizing and the
// first few growth steps.
func TestPools_FuzzManyShortRuns(t *testing.T) {
	numPools := 10_000
	if testing.Short() {
		numPools = 200
	}

	for name, f := range strategies() {
		t.Run(name, func(t *testing.T) {
			pooltest.Fuzz(t, f, numPools, 10)
		})
	}
}

// Few long-lived pools: exercises sustained churn, slot reuse and deep
// growth.
func TestPools_FuzzFewLongRuns(t *testing.T) {
	numPools := 100
	if testing.Short() {
		numPools = 5
	}

	for name, f := range strategies() {
		t.Run(name, func(t *testing.T) {
			pooltest.Fuzz(t, f, numPools, 1000)
		})
	}
}
