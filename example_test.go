package poolparty_test

import (
	"fmt"

	poolparty "github.com/pathway31/pool-party"
	"github.com/pathway31/pool-party/bitvec"
)

func ExampleFlagPool() {
	pool := poolparty.NewFlagPool[string](bitvec.HierarchicalFlags)

	a := pool.Allocate("alpha")
	b := pool.Allocate("beta")
	fmt.Println(pool.Get(a), pool.Get(b))

	pool.Deallocate(a)
	c := pool.Allocate("gamma")
	fmt.Println(c == a)

	for id, item := range pool.Items() {
		fmt.Println(id, item)
	}
	// Output:
	// alpha beta
	// true
	// 0 gamma
	// 1 beta
}

func ExampleNewFreeList() {
	pool := poolparty.NewFreeList[int](poolparty.WithInitialCapacity(4))

	a := pool.Allocate(10)
	pool.Allocate(20)
	pool.Deallocate(a)

	// The freed slot is reused before any untouched one.
	fmt.Println(pool.Allocate(30) == a)

	stats := pool.Stats()
	fmt.Println(stats.Live, stats.Capacity)
	// Output:
	// true
	// 2 4
}
