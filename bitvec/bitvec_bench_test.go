package bitvec

import (
	"fmt"
	"math/rand"
	"testing"
)

func benchVector(factory Factory, n int, density float64) FlagVector {
	v := factory(n, false)
	rng := rand.New(rand.NewSource(2049))
	for i := range n {
		if rng.Float64() < density {
			v.Set(i, true)
		}
	}
	return v
}

func BenchmarkFindTrue(b *testing.B) {
	for name, factory := range factories() {
		for _, n := range []int{1_000, 100_000} {
			// Worst case for the scanners: a single true bit at the end.
			v := factory(n, false)
			v.Set(n-1, true)

			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				for b.Loop() {
					if _, ok := v.FindTrue(); !ok {
						b.Fatal("no true bit")
					}
				}
			})
		}
	}
}

func BenchmarkTrueBits(b *testing.B) {
	for name, factory := range factories() {
		for _, density := range []float64{0.01, 0.5} {
			v := benchVector(factory, 100_000, density)

			b.Run(fmt.Sprintf("%s/density=%v", name, density), func(b *testing.B) {
				for b.Loop() {
					count := 0
					for range v.TrueBits() {
						count++
					}
					_ = count
				}
			})
		}
	}
}

func BenchmarkSet(b *testing.B) {
	for name, factory := range factories() {
		v := factory(100_000, false)
		rng := rand.New(rand.NewSource(2049))

		b.Run(name, func(b *testing.B) {
			for i := 0; b.Loop(); i++ {
				v.Set(rng.Intn(100_000), i%2 == 0)
			}
		})
	}
}
