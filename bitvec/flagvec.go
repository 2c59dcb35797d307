package bitvec

import "iter"

// Compile-time checks to ensure every strategy satisfies FlagVector.
var _ FlagVector = (*BitVec)(nil)
var _ FlagVector = (*BoolVec)(nil)
var _ FlagVector = (*Hierarchical)(nil)
var _ FlagVector = (*RoaringVec)(nil)
var _ FlagVector = (*BitSetVec)(nil)

// FlagVector is the capability contract shared by every flag storage
// strategy. A pool built on top of it never sees the packing scheme.
type FlagVector interface {
	// Len returns the number of flags.
	Len() int

	// Get returns the flag at index i. Out-of-range indexes panic.
	Get(i int) bool

	// Set writes the flag at index i. Out-of-range indexes panic.
	Set(i int, value bool)

	// Add extends the vector by n flags, all set to value.
	Add(n int, value bool)

	// FindTrue returns the index of a true flag, or false if none is set.
	FindTrue() (int, bool)

	// TrueBits returns a lazy sequence of all true flag indexes in
	// ascending order. Each range walks the current state from the start.
	TrueBits() iter.Seq[int]
}

// Factory creates a flag vector pre-sized to n flags, all set to value.
// It selects the storage strategy at pool construction time.
type Factory func(n int, value bool) FlagVector

// FlatFlags builds flat packed BitVecs.
func FlatFlags(n int, value bool) FlagVector {
	return WithBits(n, value)
}

// BoolFlags builds naive BoolVecs.
func BoolFlags(n int, value bool) FlagVector {
	return WithBools(n, value)
}

// HierarchicalFlags builds multi-level Hierarchical vectors.
func HierarchicalFlags(n int, value bool) FlagVector {
	return WithHierarchy(n, value)
}

// RoaringFlags builds roaring-backed RoaringVecs.
func RoaringFlags(n int, value bool) FlagVector {
	return WithRoaring(n, value)
}

// BitSetFlags builds bits-and-blooms-backed BitSetVecs.
func BitSetFlags(n int, value bool) FlagVector {
	return WithBitSet(n, value)
}
