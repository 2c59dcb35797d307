package bitvec

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// RoaringVec adapts a 32-bit roaring bitmap to the FlagVector contract.
// The bitmap stores the set of true flags; the logical length is tracked
// separately since roaring has no notion of capacity.
type RoaringVec struct {
	rb       *roaring.Bitmap
	numFlags int
}

// NewRoaring creates an empty roaring flag vector.
func NewRoaring() *RoaringVec {
	return &RoaringVec{rb: roaring.New()}
}

// WithRoaring creates a roaring flag vector holding n flags, all set to
// value.
func WithRoaring(n int, value bool) *RoaringVec {
	v := &RoaringVec{rb: roaring.New(), numFlags: n}
	if value && n > 0 {
		v.rb.AddRange(0, uint64(n))
	}
	return v
}

// Len returns the number of flags.
func (v *RoaringVec) Len() int {
	return v.numFlags
}

// Get returns the flag at index i.
func (v *RoaringVec) Get(i int) bool {
	v.check(i)
	return v.rb.Contains(uint32(i))
}

// Set writes the flag at index i.
func (v *RoaringVec) Set(i int, value bool) {
	v.check(i)
	if value {
		v.rb.Add(uint32(i))
	} else {
		v.rb.Remove(uint32(i))
	}
}

// Add extends the vector by n flags, all set to value.
func (v *RoaringVec) Add(n int, value bool) {
	if n == 0 {
		return
	}
	if value {
		v.rb.AddRange(uint64(v.numFlags), uint64(v.numFlags+n))
	}
	v.numFlags += n
}

// FindTrue returns the lowest true flag index.
func (v *RoaringVec) FindTrue() (int, bool) {
	if v.rb.IsEmpty() {
		return 0, false
	}
	return int(v.rb.Minimum()), true
}

// TrueBits returns a lazy sequence of all true flag indexes in ascending
// order.
func (v *RoaringVec) TrueBits() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := v.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

func (v *RoaringVec) check(i int) {
	if i < 0 || i >= v.numFlags {
		panic("bitvec: flag index out of range")
	}
}
