package bitvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factories() map[string]Factory {
	return map[string]Factory{
		"flat":         FlatFlags,
		"bool":         BoolFlags,
		"hierarchical": HierarchicalFlags,
		"roaring":      RoaringFlags,
		"bitset":       BitSetFlags,
	}
}

func TestFlagVector_PresizedTrue(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			v := factory(100, true)

			require.Equal(t, 100, v.Len())
			for i := range 100 {
				assert.True(t, v.Get(i))
			}

			i, ok := v.FindTrue()
			require.True(t, ok)
			assert.Equal(t, 0, i)
		})
	}
}

func TestFlagVector_PresizedFalse(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			v := factory(100, false)

			require.Equal(t, 100, v.Len())
			_, ok := v.FindTrue()
			assert.False(t, ok)
			assert.Empty(t, collectBits(v.TrueBits()))
		})
	}
}

func TestFlagVector_Empty(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			v := factory(0, true)

			require.Equal(t, 0, v.Len())
			_, ok := v.FindTrue()
			assert.False(t, ok)
			assert.Panics(t, func() { v.Get(0) })
		})
	}
}

// Every packed strategy must be observationally identical to the naive
// bool array under the same operation sequence.
func TestFlagVector_DifferentialAgainstBools(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(2049))

			for range 25 {
				n := rng.Intn(200)
				value := rng.Intn(2) == 0
				v := factory(n, value)
				mirror := WithBools(n, value)

				for range 300 {
					if v.Len() == 0 || rng.Intn(20) == 0 {
						k := 1 + rng.Intn(64)
						add := rng.Intn(2) == 0
						v.Add(k, add)
						mirror.Add(k, add)
					} else {
						i := rng.Intn(v.Len())
						set := rng.Intn(2) == 0
						v.Set(i, set)
						mirror.Set(i, set)
					}

					require.Equal(t, mirror.Len(), v.Len())

					wantIdx, wantOK := mirror.FindTrue()
					gotIdx, gotOK := v.FindTrue()
					require.Equal(t, wantOK, gotOK)
					if wantOK {
						require.Equal(t, wantIdx, gotIdx)
					}

					require.Equal(t, collectBits(mirror.TrueBits()), collectBits(v.TrueBits()))
				}
			}
		})
	}
}
