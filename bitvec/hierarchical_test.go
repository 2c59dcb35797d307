package bitvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchical_Empty(t *testing.T) {
	h := NewHierarchy()

	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.NumLevels())

	_, ok := h.FindTrue()
	assert.False(t, ok)
	assert.Empty(t, collectBits(h.TrueBits()))
	require.NoError(t, h.checkInvariants())
}

func TestHierarchical_LevelSizing(t *testing.T) {
	tests := []struct {
		bits   int
		levels int
	}{
		{bits: 1, levels: 1},
		{bits: 32, levels: 1},
		{bits: 33, levels: 2},
		{bits: 1024, levels: 2},
		{bits: 1025, levels: 3},
		{bits: 32768, levels: 3},
	}
	for _, tt := range tests {
		h := WithHierarchy(tt.bits, false)
		assert.Equal(t, tt.levels, h.NumLevels(), "bits=%d", tt.bits)
		assert.Equal(t, tt.bits, h.Len(), "bits=%d", tt.bits)
		require.NoError(t, h.checkInvariants(), "bits=%d", tt.bits)
	}
}

func TestHierarchical_GrowFromZero(t *testing.T) {
	h := NewHierarchy()
	h.Add(40, true)

	require.Equal(t, 2, h.NumLevels())
	assert.Equal(t, 40, h.levels[0].Len())
	assert.Equal(t, 2, h.levels[1].Len())
	require.NoError(t, h.checkInvariants())

	i, ok := h.FindTrue()
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestHierarchical_SetPropagatesUpward(t *testing.T) {
	h := WithHierarchy(2048, false)
	require.Equal(t, 3, h.NumLevels())

	h.Set(1500, true)
	require.NoError(t, h.checkInvariants())
	assert.True(t, h.Get(1500))
	assert.True(t, h.levels[1].Get(1500/32))
	assert.True(t, h.levels[2].Get(1500/1024))

	i, ok := h.FindTrue()
	require.True(t, ok)
	assert.Equal(t, 1500, i)

	h.Set(1500, false)
	require.NoError(t, h.checkInvariants())
	_, ok = h.FindTrue()
	assert.False(t, ok)
}

func TestHierarchical_ClearingLastBitInGroupFlipsParent(t *testing.T) {
	h := WithHierarchy(64, false)

	// Two true bits in the same 32-bit group.
	h.Set(33, true)
	h.Set(40, true)
	assert.True(t, h.levels[1].Get(1))

	h.Set(33, false)
	require.NoError(t, h.checkInvariants())
	assert.True(t, h.levels[1].Get(1), "group still holds a true bit")

	h.Set(40, false)
	require.NoError(t, h.checkInvariants())
	assert.False(t, h.levels[1].Get(1), "group is empty, parent must clear")
}

func TestHierarchical_AddGrowsExistingLevels(t *testing.T) {
	h := WithHierarchy(10, false)
	require.Equal(t, 1, h.NumLevels())

	// Still fits the single-level capacity of 32 bits.
	h.Add(20, false)
	assert.Equal(t, 30, h.Len())
	assert.Equal(t, 1, h.NumLevels())
	require.NoError(t, h.checkInvariants())

	// Overflows the top word: a new OR-reduction level appears.
	h.Add(10, false)
	assert.Equal(t, 40, h.Len())
	assert.Equal(t, 2, h.NumLevels())
	require.NoError(t, h.checkInvariants())
}

func TestHierarchical_AddTruePropagates(t *testing.T) {
	h := WithHierarchy(100, false)
	h.Add(50, true)
	require.NoError(t, h.checkInvariants())

	for i := range 100 {
		assert.False(t, h.Get(i))
	}
	for i := 100; i < 150; i++ {
		assert.True(t, h.Get(i))
	}

	i, ok := h.FindTrue()
	require.True(t, ok)
	assert.Equal(t, 100, i)
}

func TestHierarchical_DoublingGrowthKeepsInvariants(t *testing.T) {
	// The growth pattern the pools produce: 0 -> 1 -> 2 -> 4 -> ...
	h := NewHierarchy()
	size := 0
	for size < 100_000 {
		added := 1
		if size > 0 {
			added = size
		}
		h.Add(added, true)
		size += added

		require.Equal(t, size, h.Len())
		require.NoError(t, h.checkInvariants())
	}
}

func TestHierarchical_TrueBitsSkipsEmptySubtrees(t *testing.T) {
	h := WithHierarchy(50_000, false)
	want := []int{0, 1, 1023, 1024, 31_999, 49_999}
	for _, i := range want {
		h.Set(i, true)
	}

	assert.Equal(t, want, collectBits(h.TrueBits()))
	assert.Equal(t, want, collectBits(h.TrueBits()), "restartable")

	for i := range h.TrueBits() {
		assert.Equal(t, 0, i)
		break
	}
}

func TestHierarchical_DifferentialAgainstBools(t *testing.T) {
	rng := rand.New(rand.NewSource(2049))

	for range 50 {
		h := NewHierarchy()
		mirror := NewBools()

		for range 200 {
			if h.Len() == 0 || rng.Intn(10) == 0 {
				n := 1 + rng.Intn(100)
				value := rng.Intn(2) == 0
				h.Add(n, value)
				mirror.Add(n, value)
			} else {
				i := rng.Intn(h.Len())
				value := rng.Intn(2) == 0
				h.Set(i, value)
				mirror.Set(i, value)
			}

			require.NoError(t, h.checkInvariants())
			require.Equal(t, mirror.Len(), h.Len())

			wantIdx, wantOK := mirror.FindTrue()
			gotIdx, gotOK := h.FindTrue()
			require.Equal(t, wantOK, gotOK)
			if wantOK {
				// Any true bit is a valid answer for the hierarchy,
				// but the descent by lowest set bit finds the first.
				require.Equal(t, wantIdx, gotIdx)
			}

			require.Equal(t, collectBits(mirror.TrueBits()), collectBits(h.TrueBits()))
		}
	}
}
