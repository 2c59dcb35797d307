package bitvec

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// BitSetVec adapts a bits-and-blooms bitset to the FlagVector contract.
// The underlying set grows on demand; the logical length is tracked
// separately and bits are never set at or beyond it.
type BitSetVec struct {
	bs       *bitset.BitSet
	numFlags int
}

// NewBitSet creates an empty bitset flag vector.
func NewBitSet() *BitSetVec {
	return &BitSetVec{bs: bitset.New(0)}
}

// WithBitSet creates a bitset flag vector holding n flags, all set to
// value.
func WithBitSet(n int, value bool) *BitSetVec {
	v := &BitSetVec{bs: bitset.New(uint(n)), numFlags: n}
	if value && n > 0 {
		v.bs.FlipRange(0, uint(n))
	}
	return v
}

// Len returns the number of flags.
func (v *BitSetVec) Len() int {
	return v.numFlags
}

// Get returns the flag at index i.
func (v *BitSetVec) Get(i int) bool {
	v.check(i)
	return v.bs.Test(uint(i))
}

// Set writes the flag at index i.
func (v *BitSetVec) Set(i int, value bool) {
	v.check(i)
	if value {
		v.bs.Set(uint(i))
	} else {
		v.bs.Clear(uint(i))
	}
}

// Add extends the vector by n flags, all set to value. The appended region
// is guaranteed clear, so setting it is a single flip of the new range.
func (v *BitSetVec) Add(n int, value bool) {
	if n == 0 {
		return
	}
	if value {
		v.bs.FlipRange(uint(v.numFlags), uint(v.numFlags+n))
	}
	v.numFlags += n
}

// FindTrue returns the lowest true flag index.
func (v *BitSetVec) FindTrue() (int, bool) {
	i, ok := v.bs.NextSet(0)
	if !ok {
		return 0, false
	}
	return int(i), true
}

// TrueBits returns a lazy sequence of all true flag indexes in ascending
// order.
func (v *BitSetVec) TrueBits() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := v.bs.NextSet(0); ok; i, ok = v.bs.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

func (v *BitSetVec) check(i int) {
	if i < 0 || i >= v.numFlags {
		panic("bitvec: flag index out of range")
	}
}
