package pooltest

import (
	"fmt"
	"math/rand"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const (
	// fuzzSeed makes every fuzz run reproduce the same operation
	// sequences.
	fuzzSeed = 2049

	maxFuzzCapacity = 10_000

	// maxLiveItems caps allocation pressure per pool so runs stay in
	// memory bounds.
	maxLiveItems = 100_000

	maxMutationTokens = 10
)

const (
	mutateSet = iota
	mutateAllocate
	mutateDeallocate
	numMutations
)

// Fuzz drives numPools independent pools through up to maxMutations
// random mutations each, checking the pool against the Reference oracle
// after every mutation. Pools are sharded across goroutines; each shard
// gets its own deterministic seed, so runs are reproducible regardless of
// scheduling.
func Fuzz(t *testing.T, f Factory, numPools, maxMutations int) {
	t.Helper()

	shards := min(runtime.GOMAXPROCS(0), numPools)

	var g errgroup.Group
	for shard := range shards {
		pools := numPools / shards
		if shard < numPools%shards {
			pools++
		}
		seed := int64(fuzzSeed + shard)

		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			for range pools {
				if err := fuzzOne(f, rng, maxMutations); err != nil {
					return err
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func fuzzOne(f Factory, rng *rand.Rand, maxMutations int) error {
	var pool Pool
	var ref *Reference
	if rng.Intn(2) == 0 {
		pool = f.New()
		ref = NewReference()
	} else {
		n := rng.Intn(maxFuzzCapacity)
		pool = f.WithCapacity(n)
		ref = NewReferenceWithCapacity(n)
	}

	pairs := newPairTable()
	if err := compare(pool, ref, pairs); err != nil {
		return err
	}

	// Each run draws its own mutation weights so some runs are
	// allocation heavy, some churn heavy.
	var weights [numMutations]int
	total := 0
	for m := range weights {
		weights[m] = 1 + rng.Intn(maxMutationTokens)
		total += weights[m]
	}

	for range maxMutations {
		switch pickMutation(rng, weights, total) {
		case mutateSet:
			if ref.Len() == 0 {
				continue
			}
			pair := pairs.random(rng)
			value := randomItem(rng)
			pool.Set(pair.test, value)
			ref.Set(pair.ref, value)

		case mutateAllocate:
			if ref.Len() >= maxLiveItems {
				continue
			}
			value := randomItem(rng)
			pairs.add(idPair{test: pool.Allocate(value), ref: ref.Allocate(value)})

		case mutateDeallocate:
			if ref.Len() == 0 {
				continue
			}
			pair := pairs.random(rng)
			pool.Deallocate(pair.test)
			ref.Deallocate(pair.ref)
			pairs.remove(pair)
		}

		if err := compare(pool, ref, pairs); err != nil {
			return err
		}
	}

	return nil
}

func pickMutation(rng *rand.Rand, weights [numMutations]int, total int) int {
	token := rng.Intn(total)
	for m, w := range weights {
		if token < w {
			return m
		}
		token -= w
	}
	panic("pooltest: mutation token out of range")
}

func randomItem(rng *rand.Rand) Item {
	return int(int32(rng.Uint32()))
}

// compare checks every externally visible property: live count, the
// multiset of live items, and per-id lookups across all live pairs.
func compare(pool Pool, ref *Reference, pairs *pairTable) error {
	if pool.Len() != ref.Len() {
		return fmt.Errorf("pooltest: live counts differ: pool %d, reference %d", pool.Len(), ref.Len())
	}

	got := collect(pool)
	want := collect(ref)
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		return fmt.Errorf("pooltest: live item multisets differ: pool %v, reference %v", got, want)
	}

	for _, pair := range pairs.all() {
		if g, w := pool.Get(pair.test), ref.Get(pair.ref); g != w {
			return fmt.Errorf("pooltest: lookup differs for pool id %d / reference id %d: pool %d, reference %d",
				pair.test, pair.ref, g, w)
		}
	}

	return nil
}

// idPair links an id issued by the pool under test with the id the oracle
// issued for the same item.
type idPair struct {
	test int
	ref  int
}

// pairTable tracks live id pairs with O(1) insert, remove and random
// choice (swap-remove backed by an index map), so fuzz runs don't spend
// their time picking victims.
type pairTable struct {
	index map[idPair]int // pair -> position in pairs
	pairs []idPair
}

func newPairTable() *pairTable {
	return &pairTable{index: make(map[idPair]int)}
}

func (tb *pairTable) add(p idPair) {
	tb.index[p] = len(tb.pairs)
	tb.pairs = append(tb.pairs, p)
}

func (tb *pairTable) remove(p idPair) {
	i := tb.index[p]
	last := len(tb.pairs) - 1
	if i != last {
		tb.pairs[i] = tb.pairs[last]
		tb.index[tb.pairs[i]] = i
	}
	tb.pairs = tb.pairs[:last]
	delete(tb.index, p)
}

func (tb *pairTable) random(rng *rand.Rand) idPair {
	return tb.pairs[rng.Intn(len(tb.pairs))]
}

func (tb *pairTable) all() []idPair {
	return tb.pairs
}
