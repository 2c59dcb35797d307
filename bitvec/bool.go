package bitvec

import "iter"

// BoolVec is a flag vector over a plain []bool. Find is O(n); it exists as
// the reference-grade strategy the packed implementations are checked
// against.
type BoolVec struct {
	flags []bool
}

// NewBools creates an empty bool vector.
func NewBools() *BoolVec {
	return &BoolVec{}
}

// WithBools creates a bool vector holding n flags, all set to value.
func WithBools(n int, value bool) *BoolVec {
	flags := make([]bool, n)
	if value {
		for i := range flags {
			flags[i] = true
		}
	}
	return &BoolVec{flags: flags}
}

// Len returns the number of flags.
func (v *BoolVec) Len() int {
	return len(v.flags)
}

// Get returns the flag at index i.
func (v *BoolVec) Get(i int) bool {
	return v.flags[i]
}

// Set writes the flag at index i.
func (v *BoolVec) Set(i int, value bool) {
	v.flags[i] = value
}

// Add extends the vector by n flags, all set to value.
func (v *BoolVec) Add(n int, value bool) {
	for range n {
		v.flags = append(v.flags, value)
	}
}

// FindTrue returns the lowest true flag index.
func (v *BoolVec) FindTrue() (int, bool) {
	for i, flag := range v.flags {
		if flag {
			return i, true
		}
	}
	return 0, false
}

// TrueBits returns a lazy sequence of all true flag indexes in ascending
// order.
func (v *BoolVec) TrueBits() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, flag := range v.flags {
			if flag && !yield(i) {
				return
			}
		}
	}
}
